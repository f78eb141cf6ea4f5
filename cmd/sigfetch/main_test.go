package main_test

import (
	"os"
	"os/exec"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"

	sigfetch "github.com/cloudfoundry/sigfetch"
)

func withoutEnv(env []string, names ...string) []string {
	var out []string
outer:
	for _, kv := range env {
		for _, name := range names {
			if strings.HasPrefix(kv, name+"=") {
				continue outer
			}
		}
		out = append(out, kv)
	}
	return out
}

func run(env []string) (*gexec.Session, []string) {
	command := exec.Command(pathToSigfetch)
	command.Env = env

	session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
	Expect(err).NotTo(HaveOccurred())
	Eventually(session).Should(gexec.Exit(0))

	out := strings.TrimSuffix(string(session.Out.Contents()), "\n")
	return session, strings.Split(out, "\n")
}

var _ = Describe("sigfetch", func() {
	var baseEnv []string

	BeforeEach(func() {
		baseEnv = withoutEnv(os.Environ(), sigfetch.UserEnv, sigfetch.ShellEnv, "SIGFETCH_DEBUG")
	})

	It("prints one line per logo row", func() {
		env := append(baseEnv, "USER=tester", "SHELL=/usr/bin/bash")
		_, lines := run(env)

		Expect(lines).To(HaveLen(len(sigfetch.Logo)))
		for i, line := range lines {
			Expect(line).To(HavePrefix(sigfetch.Logo[i]))
		}
		Expect(lines[0]).To(ContainSubstring("tester@"))
		Expect(strings.Join(lines, "\n")).To(ContainSubstring("SH: bash"))
		Expect(strings.Join(lines, "\n")).To(ContainSubstring("KR: "))
	})

	It("drops lines whose source is unavailable", func() {
		_, lines := run(baseEnv)

		Expect(lines).To(HaveLen(len(sigfetch.Logo)))
		Expect(lines[0]).To(Equal(sigfetch.Logo[0] + " "))
		Expect(strings.Join(lines, "\n")).NotTo(ContainSubstring("SH: "))
		Expect(lines[len(lines)-1]).To(Equal(sigfetch.Logo[len(sigfetch.Logo)-1]))
	})

	It("reports skipped fields in debug mode", func() {
		session, lines := run(append(baseEnv, "SIGFETCH_DEBUG=1"))

		Expect(lines).To(HaveLen(len(sigfetch.Logo)))
		Expect(session.Err).To(gbytes.Say("Skipping unavailable field"))
	})
})
