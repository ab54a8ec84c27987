package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/live-labs/passvault/cmd"
	"github.com/live-labs/passvault/internal/generate"
	"github.com/live-labs/passvault/internal/vault"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "init":
		runInit(os.Args[2:])
	case "add":
		runAdd(os.Args[2:])
	case "list", "ls":
		runList(os.Args[2:])
	case "show":
		runShow(os.Args[2:])
	case "search":
		runSearch(os.Args[2:])
	case "update":
		runUpdate(os.Args[2:])
	case "rm":
		runRm(os.Args[2:])
	case "gen":
		runGen(os.Args[2:])
	case "check":
		runCheck(os.Args[2:])
	case "health":
		runHealth(os.Args[2:])
	case "diff":
		runDiff(os.Args[2:])
	case "keyring":
		runKeyring(os.Args[2:])
	case "completion":
		runCompletion(os.Args[2:])
	case "help", "-h", "--help":
		if len(os.Args) <= 2 {
			printUsage()
			return
		}
		printCommandHelp(os.Args[2])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// vaultFlag registers the shared -vault flag on a command's flag set
func vaultFlag(fs *flag.FlagSet) *string {
	return fs.String("vault", "", "Vault file (default $PASSVAULT_FILE or passvault.dat)")
}

func parse(fs *flag.FlagSet, args []string) {
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func runInit(args []string) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	path := vaultFlag(fs)
	parse(fs, args)

	cmd.Init(cmd.VaultPath(*path))
}

func runAdd(args []string) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	path := vaultFlag(fs)
	website := fs.String("website", "", "Website or service name")
	username := fs.String("username", "", "Username or login")
	password := fs.String("password", "", "Password (prompted if omitted)")
	category := fs.String("category", "", "Category label")
	notes := fs.String("notes", "", "Free-form notes")
	genLength := fs.Int("gen", 0, "Generate a password of this length instead of prompting")
	parse(fs, args)

	draft := vault.Draft{
		Website:  *website,
		Username: *username,
		Password: *password,
		Category: *category,
		Notes:    *notes,
	}
	cmd.Add(cmd.VaultPath(*path), draft, *genLength)
}

func runList(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	path := vaultFlag(fs)
	parse(fs, args)

	cmd.List(cmd.VaultPath(*path))
}

func runShow(args []string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	path := vaultFlag(fs)
	parse(fs, args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: passvault show <id>")
		os.Exit(1)
	}
	cmd.Show(cmd.VaultPath(*path), fs.Arg(0))
}

func runSearch(args []string) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	path := vaultFlag(fs)
	parse(fs, args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: passvault search <query>")
		os.Exit(1)
	}
	cmd.Search(cmd.VaultPath(*path), fs.Arg(0))
}

func runUpdate(args []string) {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	path := vaultFlag(fs)
	website := fs.String("website", "", "New website or service name")
	username := fs.String("username", "", "New username or login")
	password := fs.String("password", "", "New password")
	category := fs.String("category", "", "New category label")
	notes := fs.String("notes", "", "New free-form notes")
	parse(fs, args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: passvault update [flags] <id>")
		os.Exit(1)
	}

	// Only flags the user actually set become part of the patch, so an
	// empty string can still clear a field explicitly.
	var patch cmd.FieldPatch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "website":
			patch.Website = website
		case "username":
			patch.Username = username
		case "password":
			patch.Password = password
		case "category":
			patch.Category = category
		case "notes":
			patch.Notes = notes
		}
	})

	cmd.Update(cmd.VaultPath(*path), fs.Arg(0), patch)
}

func runRm(args []string) {
	fs := flag.NewFlagSet("rm", flag.ExitOnError)
	path := vaultFlag(fs)
	force := fs.Bool("force", false, "Delete without confirmation")
	parse(fs, args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: passvault rm [-force] <id>")
		os.Exit(1)
	}
	cmd.Remove(cmd.VaultPath(*path), fs.Arg(0), *force)
}

func runGen(args []string) {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	length := fs.Int("length", 16, "Password length (clamped to 8..32)")
	noUpper := fs.Bool("no-upper", false, "Exclude uppercase letters")
	noDigits := fs.Bool("no-digits", false, "Exclude digits")
	noSymbols := fs.Bool("no-symbols", false, "Exclude symbols")
	parse(fs, args)

	classes := generate.Classes{
		Upper:   !*noUpper,
		Lower:   true,
		Digits:  !*noDigits,
		Symbols: !*noSymbols,
	}
	cmd.Gen(*length, classes)
}

func runCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	parse(fs, args)

	password := ""
	if fs.NArg() > 0 {
		password = fs.Arg(0)
	}
	cmd.Check(password)
}

func runHealth(args []string) {
	fs := flag.NewFlagSet("health", flag.ExitOnError)
	path := vaultFlag(fs)
	parse(fs, args)

	cmd.Health(cmd.VaultPath(*path))
}

func runDiff(args []string) {
	fs := flag.NewFlagSet("diff", flag.ExitOnError)
	path := vaultFlag(fs)
	parse(fs, args)

	cmd.Diff(cmd.VaultPath(*path))
}

func runKeyring(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: passvault keyring <save|delete|status>")
		os.Exit(1)
	}

	fs := flag.NewFlagSet("keyring", flag.ExitOnError)
	path := vaultFlag(fs)
	parse(fs, args[1:])

	switch args[0] {
	case "save":
		cmd.KeyringSave(cmd.VaultPath(*path))
	case "delete":
		cmd.KeyringDelete(cmd.VaultPath(*path))
	case "status":
		cmd.KeyringStatus(cmd.VaultPath(*path))
	default:
		fmt.Fprintf(os.Stderr, "Unknown keyring subcommand: %s\n", args[0])
		os.Exit(1)
	}
}

func runCompletion(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: passvault completion <bash|zsh|fish>")
		os.Exit(1)
	}
	cmd.Completion(args[0])
}

func printUsage() {
	fmt.Println("passvault - Local encrypted credential vault")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  passvault <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  init        Create a new vault")
	fmt.Println("  add         Add a credential entry")
	fmt.Println("  list, ls    List all entries (passwords hidden)")
	fmt.Println("  show        Show a single entry including the password")
	fmt.Println("  search      Search entries by website, username or category")
	fmt.Println("  update      Update fields of an entry")
	fmt.Println("  rm          Delete an entry")
	fmt.Println("  gen         Generate a random password")
	fmt.Println("  check       Analyze password strength")
	fmt.Println("  health      Show weak/reused/old counts and a score")
	fmt.Println("  diff        Show changes since the previous snapshot")
	fmt.Println("  keyring     Manage the passphrase in the OS keyring")
	fmt.Println("  completion  Generate shell completions")
	fmt.Println("  help        Show help for a command")
	fmt.Println()
	fmt.Println("The vault file is taken from -vault, then $PASSVAULT_FILE,")
	fmt.Println("then ./passvault.dat. The passphrase is taken from")
	fmt.Println("$PASSVAULT_PASSPHRASE, then the OS keyring, then a prompt.")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  passvault init")
	fmt.Println("  passvault add -website github.com -username alice -gen 20")
	fmt.Println("  passvault search github")
	fmt.Println("  passvault health")
	fmt.Println()
	fmt.Println("Use 'passvault help <command>' for more information about a command.")
}

func printCommandHelp(command string) {
	switch command {
	case "init":
		fmt.Println("passvault init [-vault <file>]")
		fmt.Println()
		fmt.Println("Creates a new vault file and its metadata sidecar.")
		fmt.Println("Prompts twice for a passphrase (minimum 6 characters).")
		fmt.Println("The passphrase is never stored - only a derived verifier is.")
	case "add":
		fmt.Println("passvault add -website <site> [flags]")
		fmt.Println()
		fmt.Println("Adds a credential entry to the vault.")
		fmt.Println()
		fmt.Println("Flags:")
		fmt.Println("  -website    Website or service name (required)")
		fmt.Println("  -username   Username or login")
		fmt.Println("  -password   Password; prompted without echo if omitted")
		fmt.Println("  -gen N      Generate an N-character password instead")
		fmt.Println("  -category   Category label")
		fmt.Println("  -notes      Free-form notes")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  passvault add -website github.com -username alice")
		fmt.Println("  passvault add -website github.com -username alice -gen 20")
	case "list", "ls":
		fmt.Println("passvault list [-vault <file>]")
		fmt.Println()
		fmt.Println("Lists all entries with ID, website, username and category.")
		fmt.Println("Passwords are never shown; use 'passvault show <id>'.")
	case "show":
		fmt.Println("passvault show <id>")
		fmt.Println()
		fmt.Println("Shows a single entry in full, including the password.")
	case "search":
		fmt.Println("passvault search <query>")
		fmt.Println()
		fmt.Println("Case-insensitive substring search over website, username")
		fmt.Println("and category. An empty query matches every entry.")
	case "update":
		fmt.Println("passvault update [flags] <id>")
		fmt.Println()
		fmt.Println("Overwrites the given fields of an entry. Only fields named")
		fmt.Println("by a flag change; an explicitly empty flag clears the field.")
		fmt.Println()
		fmt.Println("Example:")
		fmt.Println("  passvault update -password n3w-s3cret 1b4e28ba-...")
	case "rm":
		fmt.Println("passvault rm [-force] <id>")
		fmt.Println()
		fmt.Println("Deletes an entry. Asks for confirmation unless -force.")
	case "gen":
		fmt.Println("passvault gen [-length N] [-no-upper] [-no-digits] [-no-symbols]")
		fmt.Println()
		fmt.Println("Generates a random password (length clamped to 8..32) and")
		fmt.Println("prints it to stdout; the strength assessment goes to stderr")
		fmt.Println("so the password alone can be piped.")
	case "check":
		fmt.Println("passvault check [password]")
		fmt.Println()
		fmt.Println("Scores a password and prints strength, entropy and feedback.")
		fmt.Println("Without an argument the password is prompted without echo,")
		fmt.Println("keeping it out of shell history.")
	case "health":
		fmt.Println("passvault health [-vault <file>]")
		fmt.Println()
		fmt.Println("Reports weak, reused and old (>180 days) password counts")
		fmt.Println("and an overall security score out of 100.")
	case "diff":
		fmt.Println("passvault diff [-vault <file>]")
		fmt.Println()
		fmt.Println("Shows a redacted patch between the previous snapshot")
		fmt.Println("generation and the current one. Passwords never appear.")
	case "keyring":
		fmt.Println("passvault keyring <save|delete|status>")
		fmt.Println()
		fmt.Println("Manages the vault passphrase in the OS keyring:")
		fmt.Println("  save     Verify the passphrase and store it")
		fmt.Println("  delete   Remove the stored passphrase")
		fmt.Println("  status   Report whether a passphrase is stored")
	case "completion":
		fmt.Println("passvault completion <bash|zsh|fish>")
		fmt.Println()
		fmt.Println("Outputs a shell completion script for the specified shell.")
		fmt.Println()
		fmt.Println("Setup:")
		fmt.Println("  # Bash - add to ~/.bashrc")
		fmt.Println("  eval \"$(passvault completion bash)\"")
		fmt.Println()
		fmt.Println("  # Zsh - add to ~/.zshrc")
		fmt.Println("  eval \"$(passvault completion zsh)\"")
		fmt.Println()
		fmt.Println("  # Fish - add to ~/.config/fish/config.fish")
		fmt.Println("  passvault completion fish | source")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
	}
}
