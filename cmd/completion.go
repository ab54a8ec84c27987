package cmd

import (
	"fmt"
	"os"
)

// Completion outputs shell completion scripts
func Completion(shell string) {
	switch shell {
	case "bash":
		fmt.Print(bashCompletion)
	case "zsh":
		fmt.Print(zshCompletion)
	case "fish":
		fmt.Print(fishCompletion)
	default:
		fmt.Fprintf(os.Stderr, "Unknown shell: %s\nSupported: bash, zsh, fish\n", shell)
		os.Exit(1)
	}
}

const bashCompletion = `_passvault() {
    local cur prev words cword
    _init_completion || return

    local commands="init add list show search update rm gen check health diff keyring help completion"

    if [[ $cword -eq 1 ]]; then
        COMPREPLY=($(compgen -W "$commands" -- "$cur"))
        return
    fi

    local cmd="${words[1]}"
    case "$cmd" in
        add)
            COMPREPLY=($(compgen -W "-website -username -password -category -notes -gen -vault" -- "$cur"))
            ;;
        update)
            COMPREPLY=($(compgen -W "-website -username -password -category -notes -vault" -- "$cur"))
            ;;
        rm)
            COMPREPLY=($(compgen -W "-force -vault" -- "$cur"))
            ;;
        gen)
            COMPREPLY=($(compgen -W "-length -no-upper -no-digits -no-symbols" -- "$cur"))
            ;;
        keyring)
            COMPREPLY=($(compgen -W "save delete status" -- "$cur"))
            ;;
        help)
            COMPREPLY=($(compgen -W "$commands" -- "$cur"))
            ;;
        completion)
            COMPREPLY=($(compgen -W "bash zsh fish" -- "$cur"))
            ;;
        *)
            COMPREPLY=($(compgen -W "-vault" -- "$cur"))
            ;;
    esac
}

complete -F _passvault passvault
`

const zshCompletion = `#compdef passvault

_passvault() {
    local -a commands
    commands=(
        'init:Create a new vault'
        'add:Add a credential entry'
        'list:List all entries'
        'show:Show a single entry with password'
        'search:Search entries by website, username or category'
        'update:Update fields of an entry'
        'rm:Delete an entry'
        'gen:Generate a random password'
        'check:Analyze password strength'
        'health:Show vault health report'
        'diff:Show changes since the previous snapshot'
        'keyring:Manage passphrase in OS keyring'
        'help:Show help for a command'
        'completion:Generate shell completions'
    )

    _arguments -C \
        '1: :->command' \
        '*: :->args'

    case "$state" in
        command)
            _describe -t commands 'passvault commands' commands
            ;;
        args)
            case "${words[2]}" in
                keyring)
                    _values 'subcommand' save delete status
                    ;;
                help)
                    _describe -t commands 'passvault commands' commands
                    ;;
                completion)
                    _values 'shell' bash zsh fish
                    ;;
            esac
            ;;
    esac
}

_passvault "$@"
`

const fishCompletion = `# passvault fish completions

set -l commands init add list show search update rm gen check health diff keyring help completion

complete -c passvault -f

complete -c passvault -n "not __fish_seen_subcommand_from $commands" -a init -d 'Create a new vault'
complete -c passvault -n "not __fish_seen_subcommand_from $commands" -a add -d 'Add a credential entry'
complete -c passvault -n "not __fish_seen_subcommand_from $commands" -a list -d 'List all entries'
complete -c passvault -n "not __fish_seen_subcommand_from $commands" -a show -d 'Show a single entry'
complete -c passvault -n "not __fish_seen_subcommand_from $commands" -a search -d 'Search entries'
complete -c passvault -n "not __fish_seen_subcommand_from $commands" -a update -d 'Update an entry'
complete -c passvault -n "not __fish_seen_subcommand_from $commands" -a rm -d 'Delete an entry'
complete -c passvault -n "not __fish_seen_subcommand_from $commands" -a gen -d 'Generate a password'
complete -c passvault -n "not __fish_seen_subcommand_from $commands" -a check -d 'Analyze password strength'
complete -c passvault -n "not __fish_seen_subcommand_from $commands" -a health -d 'Show vault health report'
complete -c passvault -n "not __fish_seen_subcommand_from $commands" -a diff -d 'Show snapshot changes'
complete -c passvault -n "not __fish_seen_subcommand_from $commands" -a keyring -d 'Manage passphrase in OS keyring'
complete -c passvault -n "not __fish_seen_subcommand_from $commands" -a help -d 'Show help'
complete -c passvault -n "not __fish_seen_subcommand_from $commands" -a completion -d 'Generate completions'

# keyring subcommands
complete -c passvault -n "__fish_seen_subcommand_from keyring" -a "save delete status"

# help completions
complete -c passvault -n "__fish_seen_subcommand_from help" -a "$commands"

# completion completions
complete -c passvault -n "__fish_seen_subcommand_from completion" -a "bash zsh fish"
`
