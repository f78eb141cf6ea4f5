// Copyright (c) 2012 VMware, Inc.

package sigfetch

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"
)

var (
	Procd = "/proc"
	Etcd  = "/etc"
)

const (
	UserEnv  = "USER"
	ShellEnv = "SHELL"
)

func (self *OsRelease) Get() error {
	path := Etcd + "/os-release"
	return readFile(path, func(r io.Reader) error {
		name, err := ParseOsRelease(r)
		if err != nil {
			return err
		}
		self.PrettyName = name
		return nil
	})
}

func (self *Mem) Get() error {
	return readFile(Procd+"/meminfo", func(r io.Reader) error {
		mem, err := ParseMeminfo(r)
		if err != nil {
			return err
		}
		*self = mem
		return nil
	})
}

func (self *Uptime) Get() error {
	return readFile(Procd+"/uptime", func(r io.Reader) error {
		uptime, err := ParseUptime(r)
		if err != nil {
			return err
		}
		*self = uptime
		return nil
	})
}

// ParseOsRelease returns the PRETTY_NAME value of an os-release file.
// Scanning stops at the first malformed line.
func ParseOsRelease(r io.Reader) (string, error) {
	var (
		name  string
		found bool
		err   error
	)

	scanErr := scanLines(r, func(line string) bool {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			err = &ParseError{Source: "os-release", Line: line}
			return false
		}

		if key == "PRETTY_NAME" {
			name = strings.Trim(strings.TrimSpace(value), `"`)
			found = true
			return false
		}

		return true
	})

	switch {
	case scanErr != nil:
		return "", &IoError{Path: "os-release", Err: scanErr}
	case err != nil:
		return "", err
	case !found:
		return "", &NotFoundError{Source: "os-release", Key: "PRETTY_NAME"}
	}

	return name, nil
}

// ParseMeminfo extracts MemTotal and MemAvailable, in kibibytes. Lines
// after both have been seen are not read.
func ParseMeminfo(r io.Reader) (Mem, error) {
	mem := Mem{Total: -1, Available: -1}
	table := map[string]*int64{
		"MemTotal":     &mem.Total,
		"MemAvailable": &mem.Available,
	}

	var err error
	scanErr := scanLines(r, func(line string) bool {
		line = strings.TrimSpace(line)
		label, value, ok := strings.Cut(line, ":")
		if !ok {
			err = &ParseError{Source: "meminfo", Line: line}
			return false
		}

		ptr := table[strings.TrimSpace(label)]
		if ptr == nil {
			return true
		}

		num := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "kB"))
		val, convErr := strconv.ParseInt(num, 10, 64)
		if convErr != nil {
			err = &ParseError{Source: "meminfo", Line: line, Err: convErr}
			return false
		}
		*ptr = val

		return mem.Total == -1 || mem.Available == -1
	})

	switch {
	case scanErr != nil:
		return Mem{}, &IoError{Path: "meminfo", Err: scanErr}
	case err != nil:
		return Mem{}, err
	case mem.Total == -1:
		return Mem{}, &NotFoundError{Source: "meminfo", Key: "MemTotal"}
	case mem.Available == -1:
		return Mem{}, &NotFoundError{Source: "meminfo", Key: "MemAvailable"}
	}

	return mem, nil
}

// ParseUptime reads the leading seconds field of an uptime file.
func ParseUptime(r io.Reader) (Uptime, error) {
	contents, err := io.ReadAll(r)
	if err != nil {
		return Uptime{}, &IoError{Path: "uptime", Err: err}
	}

	line := string(contents)
	idx := strings.IndexFunc(line, unicode.IsSpace)
	if idx < 0 {
		return Uptime{}, &ParseError{Source: "uptime", Line: line}
	}

	seconds, err := strconv.ParseFloat(line[:idx], 64)
	if err != nil || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return Uptime{}, &ParseError{Source: "uptime", Line: line, Err: err}
	}

	return Uptime{Length: seconds}, nil
}

// ShellName returns the final path segment of a shell path.
func ShellName(path string) (string, error) {
	segments := strings.Split(path, "/")
	name := segments[len(segments)-1]
	if name == "" {
		return "", &ParseError{Source: ShellEnv, Line: path}
	}
	return name, nil
}

func lookupEnv(name string) (string, error) {
	val, ok := os.LookupEnv(name)
	if !ok {
		return "", &EnvVarError{Name: name}
	}
	return val, nil
}

func readFile(file string, parse func(io.Reader) error) error {
	f, err := os.Open(file)
	if err != nil {
		return &IoError{Path: file, Err: err}
	}
	defer f.Close()

	return parse(f)
}

func scanLines(r io.Reader, handler func(string) bool) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if !handler(scanner.Text()) {
			break
		}
	}
	return scanner.Err()
}
