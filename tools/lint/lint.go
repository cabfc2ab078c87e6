// Command lint runs the formatting, vet and lint passes over the module.
// Run it from the repository root: go run ./tools/lint
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
)

type step struct {
	title   string
	install string // go install target, if the binary is fetched on demand
	cmd     string
	args    []string
}

var steps = []step{
	{title: "go fmt", cmd: "go", args: []string{"fmt", "./..."}},
	{title: "go vet", cmd: "go", args: []string{"vet", "./..."}},
	{title: "golangci-lint", cmd: "golangci-lint", args: []string{"run", "./..."}},
	{title: "staticcheck", install: "honnef.co/go/tools/cmd/staticcheck@latest", cmd: "staticcheck", args: []string{"./..."}},
	{title: "gofumpt", install: "mvdan.cc/gofumpt@latest", cmd: "gofumpt", args: []string{"-l", "-w", "."}},
}

func runCommand(cmd string, args []string, env ...string) error {
	command := exec.Command(cmd, args...)
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr
	command.Env = append(os.Environ(), env...)
	if err := command.Run(); err != nil {
		return fmt.Errorf("error running %s %v: %w", cmd, args, err)
	}
	return nil
}

func main() {
	withTests := flag.Bool("test", false, "also run go test -race ./...")
	live := flag.Bool("live", false, "with -test, include tests against the real BrasilAPI")
	flag.Parse()

	failed := 0
	for _, s := range steps {
		fmt.Printf("Running %s...\n", s.title)
		if s.install != "" {
			if err := runCommand("go", []string{"install", s.install}); err != nil {
				fmt.Println(err)
				failed++
				continue
			}
		}
		if err := runCommand(s.cmd, s.args); err != nil {
			fmt.Println(err)
			failed++
		}
	}

	if *withTests {
		fmt.Println("Running go test...")
		var env []string
		if *live {
			env = append(env, "BRASILAPI_LIVE=1")
		}
		if err := runCommand("go", []string{"test", "-race", "./..."}, env...); err != nil {
			fmt.Println(err)
			failed++
		}
	}

	if failed > 0 {
		fmt.Printf("%d check(s) failed\n", failed)
		os.Exit(1)
	}
	fmt.Println("All checks completed!")
}
