// Command copycat mirrors a source directory tree onto a target directory
// tree, following synchronization semantics. See `copycat
// sync --help` for usage.
package main

func main() {
	if err := rootCommand.Execute(); err != nil {
		fail(err)
	}
}
