// Copyright (c) 2012 VMware, Inc.

package sigfetch

import (
	"golang.org/x/sys/unix"
)

func (self *HostIdentity) Get() error {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return err
	}

	self.KernelName = unix.ByteSliceToString(uts.Sysname[:])
	self.KernelRelease = unix.ByteSliceToString(uts.Release[:])
	self.NodeName = unix.ByteSliceToString(uts.Nodename[:])

	return nil
}
