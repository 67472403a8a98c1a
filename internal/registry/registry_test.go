package registry

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdspec/internal/schema"
)

func commands() []schema.CommandSpec {
	return []schema.CommandSpec{
		{Name: "save", Aliases: []string{"s", "write"}, Implementation: "save"},
		{Name: "load", Aliases: []string{"l"}, Implementation: "load"},
		{Name: "list", Implementation: "list"},
	}
}

func TestBuild_ResolvesEveryNameAndAlias(t *testing.T) {
	reg, err := Build(commands())
	require.NoError(t, err)
	require.Equal(t, 3, reg.Len())

	expected := map[string]string{
		"save": "save", "s": "save", "write": "save",
		"load": "load", "l": "load",
		"list": "list",
	}
	for token, want := range expected {
		spec, ok := reg.Resolve(token)
		require.True(t, ok, token)
		require.Equal(t, want, spec.Name, token)
	}

	_, ok := reg.Resolve("sav")
	require.False(t, ok)
	_, ok = reg.Resolve("")
	require.False(t, ok)
}

func TestBuild_Totality(t *testing.T) {
	// Generated command sets with unique names and aliases all build and resolve.
	for size := 0; size < 20; size++ {
		var cmds []schema.CommandSpec
		for i := 0; i < size; i++ {
			cmds = append(cmds, schema.CommandSpec{
				Name:           fmt.Sprintf("cmd%d", i),
				Aliases:        []string{fmt.Sprintf("c%d", i), fmt.Sprintf("alias-%d", i)},
				Implementation: fmt.Sprintf("impl%d", i),
			})
		}

		reg, err := Build(cmds)
		require.NoError(t, err)
		require.Len(t, reg.Names(), size*3)
		for _, c := range cmds {
			for _, token := range append([]string{c.Name}, c.Aliases...) {
				spec, ok := reg.Resolve(token)
				require.True(t, ok, token)
				require.Equal(t, c.Name, spec.Name)
			}
		}
	}
}

func TestBuild_RejectsDuplicates(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]schema.CommandSpec) []schema.CommandSpec
		want   DuplicateAliasError
	}{
		{
			name: "alias shared by two commands",
			mutate: func(c []schema.CommandSpec) []schema.CommandSpec {
				c[1].Aliases = append(c[1].Aliases, "s")
				return c
			},
			want: DuplicateAliasError{Alias: "s", First: "save", Second: "load"},
		},
		{
			name: "alias equals another command name",
			mutate: func(c []schema.CommandSpec) []schema.CommandSpec {
				c[2].Aliases = []string{"load"}
				return c
			},
			want: DuplicateAliasError{Alias: "load", First: "load", Second: "list"},
		},
		{
			name: "duplicate command name",
			mutate: func(c []schema.CommandSpec) []schema.CommandSpec {
				return append(c, schema.CommandSpec{Name: "list", Implementation: "other"})
			},
			want: DuplicateAliasError{Alias: "list", First: "list", Second: "list"},
		},
		{
			name: "alias declared before the command it collides with",
			mutate: func(c []schema.CommandSpec) []schema.CommandSpec {
				c[0].Aliases = append(c[0].Aliases, "list")
				return c
			},
			want: DuplicateAliasError{Alias: "list", First: "save", Second: "list"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := Build(tt.mutate(commands()))
			require.Nil(t, reg)

			var dup *DuplicateAliasError
			require.True(t, errors.As(err, &dup))
			require.Equal(t, tt.want, *dup)
			require.Contains(t, err.Error(), tt.want.Alias)
		})
	}
}

func TestBuild_RejectsInvalidNames(t *testing.T) {
	for _, cmds := range [][]schema.CommandSpec{
		{{Name: ""}},
		{{Name: "two words"}},
		{{Name: "ok", Aliases: []string{""}}},
		{{Name: "ok", Aliases: []string{"a\tb"}}},
	} {
		_, err := Build(cmds)
		var invalid *InvalidNameError
		require.True(t, errors.As(err, &invalid), "%v", cmds)
	}
}

func TestBuild_CopiesSpecs(t *testing.T) {
	cmds := commands()
	reg, err := Build(cmds)
	require.NoError(t, err)

	cmds[0].Description = "changed"
	cmds[0].Aliases[0] = "changed"

	spec, ok := reg.Resolve("s")
	require.True(t, ok)
	require.Empty(t, spec.Description)
	require.Equal(t, []string{"s", "write"}, spec.Aliases)
}

func TestRegistry_NamesAndCommands(t *testing.T) {
	reg, err := Build(commands())
	require.NoError(t, err)

	require.Equal(t, []string{"l", "list", "load", "s", "save", "write"}, reg.Names())

	var order []string
	for _, c := range reg.Commands() {
		order = append(order, c.Name)
	}
	require.Equal(t, []string{"save", "load", "list"}, order)

	_, ok := reg.Lookup("s")
	require.False(t, ok)
	spec, ok := reg.Lookup("save")
	require.True(t, ok)
	require.Equal(t, "save", spec.Implementation)
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	reg, err := Build(commands())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				spec, ok := reg.Resolve("write")
				if !ok || spec.Name != "save" {
					t.Errorf("resolve write: got %v %v", spec, ok)
					return
				}
				_ = reg.Names()
			}
		}()
	}
	wg.Wait()
}
