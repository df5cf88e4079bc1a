// Package backend starts the installer backend during development.
//
// The launcher is built from the frontend directory of a repository laid out
// as
//
//	<root>/
//	    backend/            Python service, with venv-test/
//	    frontend/src-tauri/ launcher working directory
//
// so the backend is found two levels above the working directory. The
// Supervisor derives that path, picks a shell invocation for the host OS,
// spawns the backend detached and then blocks for a fixed grace period.
//
// # Ownership
//
// The spawned process is never waited on, monitored or terminated by the
// launcher. DetachedSpawner makes that contract explicit: implementations
// must release the process as soon as it has started.
//
// # Build Mode
//
// Production builds ship a self-starting backend, so Launch is a no-op
// unless the build mode is development.
package backend
