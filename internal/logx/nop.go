package logx

// discard drops every entry. Used as the default when a component is built without a logger.
type discard struct{}

var nop Logger = discard{}

// Nop returns a Logger that writes nothing.
func Nop() Logger { return nop }

func (discard) Debug(string, ...Field) {}
func (discard) Info(string, ...Field)  {}
func (discard) Warn(string, ...Field)  {}
func (discard) Error(string, ...Field) {}
func (discard) With(...Field) Logger   { return nop }
func (discard) Sync() error            { return nil }
