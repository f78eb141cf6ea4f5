//go:build !linux

package sigfetch

func (self *HostIdentity) Get() error {
	return ErrNotImplemented
}
