package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/nickromney-org/localtime/pkg/localtime"
	"github.com/nickromney-org/localtime/pkg/types"
	"github.com/spf13/cobra"
)

// jsonOutput is the --json document
type jsonOutput struct {
	Instant  int64        `json:"instant"`
	UTC      string       `json:"utc"`
	Zone     string       `json:"zone"`
	Full     string       `json:"full"`
	Short    string       `json:"short"`
	Named    bool         `json:"named"`
	Fallback bool         `json:"fallback"`
	Military bool         `json:"military"`
	Release  *jsonRelease `json:"release,omitempty"`
}

type jsonRelease struct {
	Version     string `json:"version,omitempty"`
	Tag         string `json:"tag"`
	Name        string `json:"name,omitempty"`
	PublishedAt string `json:"published_at"`
	URL         string `json:"url,omitempty"`
}

func output(cmd *cobra.Command, opts *options, config localtime.DisplayConfig, result localtime.Result, release *types.Release) error {
	out := cmd.OutOrStdout()

	if opts.jsonOutput {
		return outputJSON(out, config, result, release)
	}

	if opts.ciOutput {
		return outputCI(out, config, result, release)
	}

	outputTerminal(out, cmd.ErrOrStderr(), opts, config, result, release)
	return nil
}

func outputJSON(w io.Writer, config localtime.DisplayConfig, result localtime.Result, release *types.Release) error {
	doc := jsonOutput{
		Instant:  int64(config.EventTime),
		UTC:      config.EventTime.Time().Format(time.RFC3339),
		Zone:     result.ZoneName(),
		Full:     result.Full,
		Short:    result.Short,
		Named:    result.Named,
		Fallback: result.Fallback,
		Military: config.UseMilitaryTime,
	}

	if release != nil {
		doc.Release = &jsonRelease{
			Version:     versionString(release.Version),
			Tag:         release.Tag,
			Name:        release.Name,
			PublishedAt: release.PublishedAt.UTC().Format(time.RFC3339),
			URL:         release.URL,
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func outputCI(w io.Writer, config localtime.DisplayConfig, result localtime.Result, release *types.Release) error {
	// Short form first (for script compatibility)
	fmt.Fprintln(w, result.Short)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "::group::🕒 Local Time")
	if release != nil {
		fmt.Fprintf(w, "Release: %s\n", releaseTitle(release))
	}
	fmt.Fprintf(w, "Instant: %d\n", config.EventTime)
	fmt.Fprintf(w, "Zone: %s\n", result.ZoneName())
	fmt.Fprintf(w, "Full: %s\n", result.Full)
	fmt.Fprintf(w, "Short: %s\n", result.Short)
	fmt.Fprintln(w, "::endgroup::")
	fmt.Fprintln(w)

	if result.Fallback {
		fmt.Fprintf(w, "::warning title=Timezone Fallback::%s\n", fallbackMessage(config, result))
	}
	fmt.Fprintf(w, "::notice title=Local Time::%s\n", result.Full)

	return nil
}

func outputTerminal(w, errW io.Writer, opts *options, config localtime.DisplayConfig, result localtime.Result, release *types.Release) {
	if opts.verbose && result.Fallback {
		yellow.Fprintf(errW, "⚠️  %s\n", fallbackMessage(config, result))
	}

	if opts.quiet {
		fmt.Fprintln(w, result.Short)
		return
	}

	if release != nil {
		cyan.Fprintf(w, "📦 %s\n", releaseTitle(release))
	}

	green.Fprintln(w, result.Short)
	fmt.Fprintln(w, result.Full)

	if release != nil {
		grey.Fprintf(w, "Released %s\n", formatAge(release.PublishedAt, now()))
	}

	if opts.verbose {
		fmt.Fprintln(w)
		printDetails(w, config, result, release)
	}
}

func printDetails(w io.Writer, config localtime.DisplayConfig, result localtime.Result, release *types.Release) {
	cyan.Fprintln(w, "📊 Details")
	cyan.Fprintln(w, "─────────────────────────────────────")

	_, offset := config.EventTime.Time().In(result.Location).Zone()

	fmt.Fprintf(w, "  Instant:          %d\n", config.EventTime)
	fmt.Fprintf(w, "  UTC:              %s\n", config.EventTime.Time().Format(time.RFC3339))
	fmt.Fprintf(w, "  Zone:             %s\n", result.ZoneName())
	fmt.Fprintf(w, "  Offset:           %s\n", formatOffset(offset))
	fmt.Fprintf(w, "  Named zone:       %t\n", result.Named)
	fmt.Fprintf(w, "  Fallback:         %t\n", result.Fallback)
	fmt.Fprintf(w, "  Military time:    %t\n", config.UseMilitaryTime)

	if release != nil && release.URL != "" {
		fmt.Fprintf(w, "  Release URL:      %s\n", release.URL)
	}
}

func fallbackMessage(config localtime.DisplayConfig, result localtime.Result) string {
	if config.TimeZone == "" {
		return fmt.Sprintf("No timezone set, rendered in the local zone (%s)", result.ZoneName())
	}
	return fmt.Sprintf("Timezone %q could not be resolved, rendered in the local zone (%s)", config.TimeZone, result.ZoneName())
}

// versionString returns "" for a release without a semantic version
func versionString(v *semver.Version) string {
	if v == nil {
		return ""
	}
	return v.String()
}

func releaseTitle(release *types.Release) string {
	if release.Name == "" || release.Name == release.Tag {
		return release.Tag
	}
	return fmt.Sprintf("%s (%s)", release.Name, release.Tag)
}
