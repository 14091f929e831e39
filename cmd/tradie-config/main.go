// Command tradie-config prints a project's resolved build configuration.
//
// Usage:
//
//	tradie-config resolve                 # defaults + .tradierc
//	tradie-config resolve -c test         # ... plus the "test" overrides
//	tradie-config resolve -r ./app -f yaml
//	tradie-config watch -c optimise       # re-print on every .tradierc change
package main

import (
	"os"

	"github.com/MKhiriev/tradie-config/internal/cli"
	"github.com/MKhiriev/tradie-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	os.Exit(cli.Run(info, os.Args[1:], os.Stdout, os.Stderr))
}
