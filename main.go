package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"copypath/internal/clipboard"
	"copypath/internal/dispatch"
	"copypath/internal/installer"
	"copypath/internal/log"
	"copypath/internal/menu"
	"copypath/internal/model"
	"copypath/internal/notify"
	"copypath/internal/privilege"
	"copypath/internal/store"
	"copypath/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      model.ReleaseOwner,
		Repository: model.ReleaseRepository,
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		log.ErrorErr(log.CatDispatch, "update check failed", err)
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\nA new version is available: %s (you have %s)\n", res.Current, currentVer)
	} else if pflag.Lookup("update").Changed {
		fmt.Printf("You are using the latest version: %s\n", currentVer)
	}
}

// splitArgs separates the long options registered on fs ("--name",
// "--name=value", "--name value") from everything else. The remaining
// arguments keep their order and go to the dispatcher untouched, so
// "-remove", "--bogus" and paths are never seen by the flag parser.
func splitArgs(fs *pflag.FlagSet, args []string) (options, positional []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") || len(arg) == 2 {
			positional = append(positional, arg)
			continue
		}

		name, _, hasValue := strings.Cut(arg[2:], "=")
		f := fs.Lookup(name)
		if f == nil {
			positional = append(positional, arg)
			continue
		}

		options = append(options, arg)
		if !hasValue && f.NoOptDefVal == "" && i+1 < len(args) {
			i++
			options = append(options, args[i])
		}
	}
	return options, positional
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: copypath [options] [-reinstall | -remove | <path>]\n\n")
		fmt.Fprintf(os.Stderr, "copypath adds a \"Copy full path\" entry to the Explorer context menu\n")
		fmt.Fprintf(os.Stderr, "of files and folders. Clicking it copies the item's full path.\n")
		fmt.Fprintf(os.Stderr, "Installing and removing need an elevated (administrator) prompt.\n\n")
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  (none)        Install the menu entry\n")
		fmt.Fprintf(os.Stderr, "  -reinstall    Remove and install again (refreshes the executable path)\n")
		fmt.Fprintf(os.Stderr, "  -remove       Remove the menu entry\n")
		fmt.Fprintf(os.Stderr, "  <path>        Copy <path> to the clipboard (used by the menu entry)\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  copypath                      # Install, report in a dialog\n")
		fmt.Fprintf(os.Stderr, "  copypath --console -remove    # Remove, report on the terminal\n")
		fmt.Fprintf(os.Stderr, "  copypath --status             # Show what is registered\n")
		fmt.Fprintf(os.Stderr, "  copypath --tui                # Interactive status screen\n")
	}

	consoleFlag := pflag.Bool("console", false, "Report outcomes on the terminal instead of dialog boxes")
	statusFlag := pflag.Bool("status", false, "Print the registration status of every scope")
	jsonFlag := pflag.Bool("json", false, "Print the registration status as JSON")
	tuiFlag := pflag.Bool("tui", false, "Start the interactive status screen")
	logFileFlag := pflag.String("log-file", "", "Write a debug log to the specified file")
	versionFlag := pflag.Bool("version", false, "Print version information")
	updateFlag := pflag.Bool("update", false, "Check for a newer release")
	helpFlag := pflag.Bool("help", false, "Show this help message")

	options, positional := splitArgs(pflag.CommandLine, os.Args[1:])
	if err := pflag.CommandLine.Parse(options); err != nil {
		os.Exit(2)
	}

	if *logFileFlag != "" {
		cleanup, err := log.Init(*logFileFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer cleanup()
	}

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("copypath version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	svc := installer.New(
		menu.NewManager(store.NewRegistry(), menu.DefaultConfig()),
		privilege.System{},
	)

	if *tuiFlag {
		runTuiMode(svc)
		return
	}

	if *statusFlag {
		runStatusMode(svc)
		return
	}

	if *jsonFlag {
		runJsonMode(svc)
		return
	}

	// Default: act on the positional argument
	var notifier notify.Notifier = notify.NewDialog()
	if *consoleFlag {
		notifier = notify.NewConsole(os.Stdout)
	}
	runDispatchMode(svc, notifier, positional)
}

func runDispatchMode(svc *installer.Installer, notifier notify.Notifier, args []string) {
	d := &dispatch.Dispatcher{
		Installer:  svc,
		Clipboard:  clipboard.NewSystem(),
		Notifier:   notifier,
		Executable: model.ResolveExecutable,
	}
	d.Run(args)
}

// currentExecutable is best effort: status still works without it.
func currentExecutable() string {
	exe, err := model.ResolveExecutable()
	if err != nil {
		log.ErrorErr(log.CatDispatch, "resolve executable", err)
		return ""
	}
	return exe
}

func runStatusMode(svc *installer.Installer) {
	exe := currentExecutable()
	statuses, err := svc.Status(exe)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading registration: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(tui.GenerateReport(statuses, exe))
}

func runJsonMode(svc *installer.Installer) {
	statuses, err := svc.Status(currentExecutable())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading registration: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(statuses); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding status: %v\n", err)
		os.Exit(1)
	}
}

func runTuiMode(svc *installer.Installer) {
	m := tui.InitialModel(svc, currentExecutable())
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
