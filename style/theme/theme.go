package theme

import (
	"sync"

	"github.com/deltasrc/taglight/style"
)

// Theme represents a color theme with its name, mode, and style generator.
type Theme struct {
	Styles func() style.Styles
	Name   string
	Mode   style.Mode
}

//nolint:gochecknoglobals // Built-in catalog, extended at runtime via Register.
var builtin = []Theme{
	{CatppuccinLatte, "catppuccin-latte", style.Light},
	{CatppuccinMocha, "catppuccin-mocha", style.Dark},
	{Dracula, "dracula", style.Dark},
	{GithubDark, "github-dark", style.Dark},
	{Gruvbox, "gruvbox", style.Dark},
	{KanagawaWave, "kanagawa-wave", style.Dark},
	{Monokai, "monokai", style.Dark},
	{Nord, "nord", style.Dark},
	{Onedark, "onedark", style.Dark},
	{RosePine, "rose-pine", style.Dark},
	{SolarizedDark, "solarized-dark", style.Dark},
	{Tango, "tango", style.Light},
	{TokyonightNight, "tokyonight-night", style.Dark},
	{Vim, "vim", style.Dark},
}

//nolint:gochecknoglobals // Guards the runtime-registered theme set below.
var (
	mu       sync.Mutex
	registry = map[string]Theme{}
)

// Register adds or replaces a custom theme under name, available afterward
// through [Styles] and [List] alongside the built-in catalog. Safe for
// concurrent use.
func Register(name string, styles func() style.Styles, mode style.Mode) {
	mu.Lock()
	defer mu.Unlock()

	registry[name] = Theme{Styles: styles, Name: name, Mode: mode}
}

// List returns theme names matching the given [style.Mode], built-in and
// registered.
func List(m style.Mode) []string {
	var names []string

	for _, t := range builtin {
		if t.Mode == m {
			names = append(names, t.Name)
		}
	}

	mu.Lock()
	defer mu.Unlock()

	for _, t := range registry {
		if t.Mode == m {
			names = append(names, t.Name)
		}
	}

	return names
}

// Styles returns the [style.Styles] for the given theme name, checking
// registered themes before the built-in catalog so a Register call can
// override a built-in name.
func Styles(name string) (style.Styles, bool) {
	mu.Lock()
	t, ok := registry[name]
	mu.Unlock()

	if ok {
		return t.Styles(), true
	}

	for _, t := range builtin {
		if t.Name == name {
			return t.Styles(), true
		}
	}

	return style.Styles{}, false
}
