package sigfetch

import (
	"github.com/rs/zerolog"
)

type ConcreteFetcher struct{}

func (c *ConcreteFetcher) GetHostIdentity() (HostIdentity, error) {
	h := HostIdentity{}
	err := h.Get()
	return h, err
}

func (c *ConcreteFetcher) GetOsName() (string, error) {
	r := OsRelease{}
	if err := r.Get(); err != nil {
		return "", err
	}
	return r.PrettyName, nil
}

func (c *ConcreteFetcher) GetMem() (Mem, error) {
	m := Mem{}
	err := m.Get()
	return m, err
}

func (c *ConcreteFetcher) GetUptime() (Uptime, error) {
	u := Uptime{}
	err := u.Get()
	return u, err
}

func (c *ConcreteFetcher) GetShell() (string, error) {
	path, err := lookupEnv(ShellEnv)
	if err != nil {
		return "", err
	}
	return ShellName(path)
}

func (c *ConcreteFetcher) GetUser(host HostIdentity) (string, error) {
	user, err := lookupEnv(UserEnv)
	if err != nil {
		return "", err
	}
	return user + "@" + host.NodeName, nil
}

// Collect gathers the info lines in display order: user@host, a blank
// separator, then OS, kernel, uptime, shell and memory. A failing source
// is logged at debug level and leaves its line absent.
func Collect(f Fetcher, host HostIdentity, logger zerolog.Logger) []InfoLine {
	line := func(field, text string, err error, format func(string) string) InfoLine {
		if err != nil {
			logger.Debug().Err(err).Str("field", field).Msg("Skipping unavailable field")
			return Absent
		}
		return Some(format(text))
	}
	labeled := func(label string) func(string) string {
		return func(text string) string {
			return Colorize(label+": "+text, TextColor)
		}
	}

	user, userErr := f.GetUser(host)
	osName, osErr := f.GetOsName()
	shell, shellErr := f.GetShell()

	uptime := ""
	u, uptimeErr := f.GetUptime()
	if uptimeErr == nil {
		uptime = u.Format()
	}

	mem := ""
	m, memErr := f.GetMem()
	if memErr == nil {
		mem = m.Format()
	}

	return []InfoLine{
		line("user", user, userErr, func(s string) string { return Colorize(s, UserColor) }),
		Some(""),
		line("os", osName, osErr, labeled("OS")),
		Some(labeled("KR")(host.KernelRelease)),
		line("uptime", uptime, uptimeErr, labeled("UP")),
		line("shell", shell, shellErr, labeled("SH")),
		line("memory", mem, memErr, labeled("ME")),
	}
}
