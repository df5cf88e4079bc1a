package bridge

import (
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
	"github.com/thinkube/installer-shell/common"
)

const errUnknownCommand = common.BusInterface + ".UnknownCommand"

// busObject is the D-Bus face of a Registry.
type busObject struct {
	registry *Registry
}

// GetConfigFlags returns (skip_config, clean_state).
func (o busObject) GetConfigFlags() (bool, bool, *dbus.Error) {
	flags, err := o.registry.ConfigFlags()
	if err != nil {
		return false, false, dbus.MakeFailedError(err)
	}
	return flags.SkipConfig, flags.CleanState, nil
}

// Invoke runs any registered command and returns its JSON result.
func (o busObject) Invoke(name string) (string, *dbus.Error) {
	if _, ok := o.registry.handlers[name]; !ok {
		return "", dbus.NewError(errUnknownCommand, []interface{}{name})
	}
	data, err := o.registry.InvokeJSON(name)
	if err != nil {
		return "", dbus.MakeFailedError(err)
	}
	return string(data), nil
}

// Exporter owns the session bus connection serving the command table.
type Exporter struct {
	conn *dbus.Conn
}

// Export publishes registry on the session bus under common.BusName.
func Export(registry *Registry) (*Exporter, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrBusUnavailable, err)
	}

	obj := busObject{registry: registry}
	path := dbus.ObjectPath(common.BusPath)

	if err := conn.Export(obj, path, common.BusInterface); err != nil {
		conn.Close()
		return nil, fmt.Errorf("exporting command bridge: %w", err)
	}

	node := &introspect.Node{
		Name: common.BusPath,
		Interfaces: []introspect.Interface{
			introspect.IntrospectData,
			{
				Name:    common.BusInterface,
				Methods: introspect.Methods(obj),
			},
		},
	}
	if err := conn.Export(introspect.NewIntrospectable(node), path, "org.freedesktop.DBus.Introspectable"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("exporting introspection data: %w", err)
	}

	reply, err := conn.RequestName(common.BusName, dbus.NameFlagDoNotQueue)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("requesting bus name %s: %w", common.BusName, err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		conn.Close()
		return nil, fmt.Errorf("bus name %s is already taken", common.BusName)
	}

	return &Exporter{conn: conn}, nil
}

// Close releases the bus name and the connection.
func (e *Exporter) Close() error {
	if e == nil || e.conn == nil {
		return nil
	}
	_, _ = e.conn.ReleaseName(common.BusName)
	return e.conn.Close()
}
