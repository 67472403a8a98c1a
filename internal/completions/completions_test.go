package completions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdspec/internal/registry"
	"github.com/footprint-tools/cmdspec/internal/schema"
)

func testCommands(t *testing.T) []CommandInfo {
	t.Helper()
	reg, err := registry.Build([]schema.CommandSpec{
		{
			Name:           "config",
			Aliases:        []string{"cfg"},
			Description:    "Manage settings",
			Implementation: "config",
			Options: []schema.OptionSpec{
				{Name: "json", Long: "json", Type: schema.TypeBool, Description: "Output as JSON"},
				{Name: "mode", Short: "m", Long: "mode", Type: schema.TypeString, Choices: []string{"fast", "safe"}, Description: "Speed: fast or safe"},
			},
		},
		{
			Name:           "setup",
			Description:    "Start tracking",
			Implementation: "setup",
			Arguments:      []schema.ArgumentSpec{{Name: "dir", Type: schema.TypePath}},
			Options: []schema.OptionSpec{
				{Name: "log", Long: "log", Type: schema.TypePath, Description: "Log file"},
			},
		},
	})
	require.NoError(t, err)

	globals := []schema.OptionSpec{{Name: "verbose", Short: "v", Long: "verbose", Type: schema.TypeBool, Description: "Say more"}}
	return Extract(reg, globals)
}

func TestExtract(t *testing.T) {
	commands := testCommands(t)
	require.Len(t, commands, 2)

	cfg := FindCommand(commands, "cfg")
	require.NotNil(t, cfg)
	require.Equal(t, "config", cfg.Name)
	require.False(t, cfg.TakesPath)
	require.Len(t, cfg.Flags, 3)
	require.Equal(t, []string{"--mode", "-m"}, cfg.Flags[1].Names())
	require.True(t, cfg.Flags[1].HasValue)
	require.False(t, cfg.Flags[0].HasValue)
	require.Equal(t, "verbose", cfg.Flags[2].Long)

	setup := FindCommand(commands, "setup")
	require.True(t, setup.TakesPath)
	require.True(t, setup.Flags[0].Path)

	require.Nil(t, FindCommand(commands, "nonexistent"))
}

func TestCandidates(t *testing.T) {
	commands := testCommands(t)

	tests := []struct {
		name    string
		words   []string
		partial string
		want    []string
	}{
		{"all commands", nil, "", []string{"cfg", "config", "setup"}},
		{"command prefix", nil, "c", []string{"cfg", "config"}},
		{"flags", []string{"config"}, "--", []string{"--json", "--mode", "--verbose"}},
		{"short flags", []string{"config"}, "-", []string{"--json", "--mode", "-m", "--verbose", "-v"}},
		{"choices after flag", []string{"cfg", "--mode"}, "s", []string{"safe"}},
		{"positional", []string{"setup"}, "a", nil},
		{"unknown command", []string{"nope"}, "-", nil},
		{"bool flag does not take value", []string{"config", "--json"}, "--m", []string{"--mode"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Candidates(commands, tt.words, tt.partial))
		})
	}
}

func TestGenerateBash(t *testing.T) {
	script := GenerateBash("my-cli", testCommands(t))

	for _, check := range []string{
		"# my-cli bash completion script",
		"_my_cli_completions()",
		"complete -F _my_cli_completions my-cli",
		"compgen -W 'config cfg setup'",
		"config|cfg)",
		"--mode|-m) COMPREPLY=( $(compgen -W 'fast safe' -- \"$cur\") ); return 0 ;;",
		"--log) COMPREPLY=( $(compgen -f -- \"$cur\") ); return 0 ;;",
		"compgen -W '--json --mode -m --verbose -v'",
	} {
		require.Contains(t, script, check)
	}
}

func TestGenerateZsh(t *testing.T) {
	script := GenerateZsh("cmdspec", testCommands(t))

	for _, check := range []string{
		"#compdef cmdspec",
		"_cmdspec()",
		"_cmdspec_commands()",
		"_describe",
		"'config:Manage settings'",
		"'setup:Start tracking'",
		"'--mode[Speed\\: fast or safe]:value:(fast safe)'",
		"'--log[Log file]:file:_files'",
		"'*:file:_files'",
	} {
		require.Contains(t, script, check)
	}
}

func TestGenerateFish(t *testing.T) {
	script := GenerateFish("cmdspec", testCommands(t))

	for _, check := range []string{
		"complete -c cmdspec -f",
		"__fish_use_subcommand",
		"-a 'config' -d 'Manage settings'",
		"-a 'cfg' -d 'Manage settings'",
		"-d 'Start tracking'",
		"-n '__fish_seen_subcommand_from config cfg' -l mode -s m -r -a 'fast safe'",
		"-n '__fish_seen_subcommand_from setup' -F",
	} {
		require.Contains(t, script, check)
	}
}

func TestGenerate_EmptyRegistry(t *testing.T) {
	reg, err := registry.Build(nil)
	require.NoError(t, err)
	commands := Extract(reg, nil)

	for shell, marker := range map[Shell]string{
		ShellBash: "_cmdspec_completions()",
		ShellZsh:  "#compdef cmdspec",
		ShellFish: "complete -c cmdspec -f",
	} {
		script, err := Generate(shell, "cmdspec", commands)
		require.NoError(t, err)
		require.Contains(t, script, marker)
	}

	_, err = Generate("tcsh", "cmdspec", commands)
	require.Error(t, err)
}

func TestPrint(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Print(&b, ShellFish, "cmdspec", testCommands(t)))
	require.True(t, strings.HasPrefix(b.String(), "# cmdspec fish completion script"))
}

func TestParseShell(t *testing.T) {
	sh, err := ParseShell("/usr/bin/zsh")
	require.NoError(t, err)
	require.Equal(t, ShellZsh, sh)

	_, err = ParseShell("powershell")
	require.Error(t, err)

	t.Setenv("SHELL", "/bin/bash")
	require.Equal(t, ShellBash, RunningShell())

	require.Equal(t, `eval "$(cmdspec --completions zsh)"`, SourceInstructions(ShellZsh, "cmdspec"))
	require.Equal(t, "~/.config/fish/config.fish", RcFile(ShellFish))
}
