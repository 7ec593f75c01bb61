package main

import (
	"os"

	"github.com/MKhiriev/go-mesc/internal/cli"
	"github.com/MKhiriev/go-mesc/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	app := cli.New(buildInfo())
	os.Exit(app.Run(os.Args[1:]))
}

func buildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
