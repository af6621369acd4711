package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Default file locations, relative to the working directory.
const (
	DefaultCorpusFile        = "./bible.txt"
	DefaultAbbreviationsFile = "./abbreviations.csv"
	DefaultOutputFile        = "./verses.txt"
	DefaultHistoryDBFile     = "./history.db"
	DefaultWidth             = 80
)

// DisplayStyle selects how the book name is shown in rendered verses.
type DisplayStyle string

const (
	// DisplayInput capitalizes the book exactly as the user typed it ("Jn 3:16").
	DisplayInput DisplayStyle = "input"
	// DisplayCanonical capitalizes the resolved book name ("John 3:16").
	DisplayCanonical DisplayStyle = "canonical"
	// DisplayUpper upper-cases the resolved book name ("JOHN 3:16").
	DisplayUpper DisplayStyle = "upper"
)

// ParseDisplayStyle validates a display style name.
func ParseDisplayStyle(s string) (DisplayStyle, error) {
	switch style := DisplayStyle(strings.ToLower(strings.TrimSpace(s))); style {
	case DisplayInput, DisplayCanonical, DisplayUpper:
		return style, nil
	case "":
		return DisplayInput, nil
	default:
		return "", fmt.Errorf("invalid display style %q; valid styles are: input, canonical, upper", s)
	}
}

// Settings is a snapshot of the configuration used by a lookup session.
type Settings struct {
	CorpusFile        string
	AbbreviationsFile string
	OutputFile        string
	// AliasPsalm maps "psalm" to "psalms" in code instead of relying on the abbreviation table.
	AliasPsalm bool
	// WholeBookName stops a typed name from matching a longer book name it is a prefix of.
	WholeBookName bool
	Display       DisplayStyle
	Width         int

	HistoryEnabled bool
	HistoryDBFile  string
}

// SetDefaults registers the default value of every configuration key.
func SetDefaults() {
	viper.SetDefault("corpus", DefaultCorpusFile)
	viper.SetDefault("abbreviations", DefaultAbbreviationsFile)
	viper.SetDefault("output", DefaultOutputFile)
	viper.SetDefault("alias_psalm", false)
	viper.SetDefault("whole_book_name", false)
	viper.SetDefault("display", string(DisplayInput))
	viper.SetDefault("width", DefaultWidth)

	viper.SetDefault("history.enabled", false)
	viper.SetDefault("history.dbfile", DefaultHistoryDBFile)
}

// Load reads the current viper state into Settings.
func Load() (Settings, error) {
	display, err := ParseDisplayStyle(viper.GetString("display"))
	if err != nil {
		return Settings{}, err
	}

	width := viper.GetInt("width")
	if width <= 0 {
		width = DefaultWidth
	}

	s := Settings{
		CorpusFile:        viper.GetString("corpus"),
		AbbreviationsFile: viper.GetString("abbreviations"),
		OutputFile:        viper.GetString("output"),
		AliasPsalm:        viper.GetBool("alias_psalm"),
		WholeBookName:     viper.GetBool("whole_book_name"),
		Display:           display,
		Width:             width,
		HistoryEnabled:    viper.GetBool("history.enabled"),
		HistoryDBFile:     viper.GetString("history.dbfile"),
	}

	if s.CorpusFile == "" {
		return Settings{}, fmt.Errorf("corpus file is required (provide via --corpus flag or corpus in config)")
	}
	if s.OutputFile == "" {
		return Settings{}, fmt.Errorf("output file is required (provide via --output flag or output in config)")
	}
	if s.HistoryEnabled && s.HistoryDBFile == "" {
		s.HistoryDBFile = DefaultHistoryDBFile
	}

	return s, nil
}
