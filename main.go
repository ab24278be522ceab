package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"jrc/internal/advisor"
	"jrc/internal/config"
	"jrc/internal/java"
	"jrc/internal/panel"
	"jrc/internal/theme"
	"jrc/internal/updater"

	"github.com/charmbracelet/huh"
)

// Version is set during build time via ldflags
var Version = "dev"

var (
	successStyle = theme.SuccessStyle
	errorStyle   = theme.ErrorStyle
	warningStyle = theme.WarningStyle
	infoStyle    = theme.InfoStyle
	titleStyle   = theme.Title
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "runtime":
		openPanel(panel.FeatureRuntimeConfig, "")
	case "guide":
		openPanel(panel.FeatureGuide, updateNotice())
	case "start":
		openPanel(panel.FeatureGettingStarted, "")
	case "doctor":
		handleDoctor()
	case "suggest":
		handleSuggest()
	case "set-home":
		handleSetHome()
	case "update":
		handleUpdate()
	case "version", "-v", "--version":
		printVersion()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// openPanel opens the feature's panel and blocks until the user closes
// it. The notice is shown by the guide panel when non-empty.
func openPanel(feature panel.Feature, notice string) {
	settings := loadSettings()
	handler := panel.NewHandler(advisor.NewClient(), settings, nil)
	registry := panel.NewRegistry(panel.TeaSurfaceFactory(notice), handler)

	if err := registry.Open(feature); err != nil {
		fmt.Println(errorStyle.Render("Error: " + err.Error()))
		os.Exit(1)
	}

	// The surface has been closed by the user; forget it so a future
	// open in this process would construct a fresh one.
	registry.NotifyDisposed(feature)
}

func handleDoctor() {
	settings := loadSettings()

	var candidates []java.Candidate
	java.WithProbe(func() error {
		candidates = java.Enumerate(settings)
		java.Validate(candidates)
		return nil
	})

	fmt.Println(titleStyle.Render("JDK candidates:"))
	fmt.Println()

	for _, c := range candidates {
		marker := errorStyle.Render("✗")
		if c.Validity == java.ValidityValid {
			marker = successStyle.Render("✓")
		}

		path := c.Path
		if path == "" {
			path = theme.Faint.Render("(not set)")
		} else {
			path = theme.PathStyle.Render(path)
		}

		fmt.Printf("  %s %-12s %s\n", marker, c.Name, path)
		if c.Hint != "" {
			fmt.Println("      " + theme.HintStyle.Render(c.Hint))
		}
	}

	fmt.Println()
	if java.RuntimeUsable(candidates) {
		fmt.Println(theme.SuccessMessage("Your Java runtime configuration is usable."))
	} else {
		fmt.Println(theme.ErrorMessage("No usable Java runtime found."))
		fmt.Println(theme.Faint.Render("  Run 'jrc suggest' to get a download suggestion."))
		os.Exit(1)
	}
}

func handleSuggest() {
	jdkVersion := advisor.DefaultJDKVersion
	jvmImpl := advisor.DefaultJVMImpl

	switch {
	case len(os.Args) > 3:
		jdkVersion = os.Args[2]
		jvmImpl = os.Args[3]
	case len(os.Args) > 2:
		jdkVersion = os.Args[2]
	default:
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("JDK distribution").
					Options(
						huh.NewOption("OpenJDK 21 (LTS)", "openjdk21"),
						huh.NewOption("OpenJDK 17 (LTS)", "openjdk17"),
						huh.NewOption("OpenJDK 11 (LTS)", "openjdk11"),
					).
					Value(&jdkVersion),
				huh.NewSelect[string]().
					Title("JVM implementation").
					Options(
						huh.NewOption("HotSpot", "hotspot"),
						huh.NewOption("OpenJ9", "openj9"),
					).
					Value(&jvmImpl),
			),
		)
		if err := form.Run(); err != nil {
			fmt.Println(errorStyle.Render("Error: " + err.Error()))
			os.Exit(1)
		}
	}

	fmt.Println(infoStyle.Render(fmt.Sprintf("Fetching latest %s (%s) release...", jdkVersion, jvmImpl)))

	suggestion, err := advisor.NewClient().LatestRelease(jdkVersion, jvmImpl)
	if err != nil {
		fmt.Println(errorStyle.Render("Error: " + err.Error()))
		os.Exit(1)
	}

	data, err := json.MarshalIndent(suggestion, "", "  ")
	if err != nil {
		fmt.Println(errorStyle.Render("Error: " + err.Error()))
		os.Exit(1)
	}
	fmt.Println(string(data))
}

func handleSetHome() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: jrc set-home <path>")
		os.Exit(1)
	}

	settings := loadSettings()
	settings.SetJavaHome(os.Args[2])

	// Validate the new value right away so mistakes surface immediately.
	probe := []java.Candidate{{
		Name:   config.JavaHomeKey,
		Path:   settings.JavaHome,
		Source: java.SourceUserSetting,
	}}
	java.Validate(probe)
	if probe[0].Validity != java.ValidityValid {
		fmt.Println(warningStyle.Render("Warning: " + probe[0].Hint))
	}

	if err := settings.Save(); err != nil {
		fmt.Println(errorStyle.Render("Error saving settings: " + err.Error()))
		os.Exit(1)
	}

	fmt.Println(theme.SuccessMessage(config.JavaHomeKey + " set to " + settings.JavaHome))
}

func handleUpdate() {
	settings := loadSettings()

	u, err := updater.NewUpdater(settings, Version)
	if err != nil {
		fmt.Println(errorStyle.Render("Error: " + err.Error()))
		os.Exit(1)
	}

	updater.ShowCheckingForUpdates()

	ctx, cancel := context.WithTimeout(context.Background(), updater.UpdateTimeout)
	defer cancel()

	release, err := u.CheckForUpdate(ctx)
	if err != nil {
		fmt.Println(errorStyle.Render("Error: " + err.Error()))
		os.Exit(1)
	}
	if release == nil {
		updater.ShowAlreadyUpToDate(Version)
		return
	}

	action, err := u.PromptForUpdate(release)
	if err != nil {
		fmt.Println(errorStyle.Render("Error: " + err.Error()))
		os.Exit(1)
	}
	if action != "update" {
		return
	}

	updater.ShowDownloadingUpdate(release.Version())
	if err := u.PerformUpdate(ctx, release); err != nil {
		fmt.Println(errorStyle.Render("Error: " + err.Error()))
		os.Exit(1)
	}
	updater.ShowUpdateSuccess(release.Version())
}

// updateNotice returns a one-line notification for the guide panel
// when a newer release exists. Failures produce no notice.
func updateNotice() string {
	settings, err := config.Load()
	if err != nil {
		return ""
	}

	u, err := updater.NewUpdater(settings, Version)
	if err != nil || !u.ShouldCheckForUpdate() {
		return ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	release, err := u.CheckForUpdate(ctx)
	if err != nil || release == nil {
		return ""
	}
	return updater.UpdateNotice(Version, release.Version())
}

func loadSettings() *config.Settings {
	settings, err := config.Load()
	if err != nil {
		fmt.Println(errorStyle.Render("Error loading settings: " + err.Error()))
		os.Exit(1)
	}
	return settings
}

func printVersion() {
	fmt.Printf("jrc %s\n", Version)
}

func printUsage() {
	fmt.Println(titleStyle.Render("jrc - Java runtime configuration"))
	fmt.Println()
	fmt.Println("Usage: jrc <command>")
	fmt.Println()
	fmt.Println("Panels:")
	fmt.Println("  runtime               Open the runtime configuration panel")
	fmt.Println("  guide                 Open the user guide panel")
	fmt.Println("  start                 Open the getting started panel")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  doctor                Check the configured Java runtime")
	fmt.Println("  suggest [jdk] [impl]  Suggest a JDK download for this platform")
	fmt.Println("  set-home <path>       Set the " + config.JavaHomeKey + " setting")
	fmt.Println("  update                Update jrc to the latest version")
	fmt.Println("  version               Show version")
	fmt.Println("  help                  Show this help")
}
