// Package selector is the terminal configurator for the screensaver suite:
// a two-pane catalog browser with an option editor, a live preview
// supervisor, and the writer for the compositor hook script that launches
// the chosen effect.
package selector

import (
	"os"
	"path/filepath"
)

// Descriptor is one catalog entry. Key doubles as the effect binary
// basename under the install directory.
type Descriptor struct {
	Key         string
	Emoji       string
	Title       string
	Description string

	// Options is the composed CLI option string, empty until configured.
	Options string
}

// Configurable reports whether the entry has an option schema.
func (d *Descriptor) Configurable() bool {
	return SchemaFor(d.Key) != nil
}

// InstallDir is where the effect binaries and the hook script live.
func InstallDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "omarchy", "branding", "screensaver")
}

// HookPath is the compositor hook script the selector installs.
func HookPath() string {
	return filepath.Join(InstallDir(), "omarchy-cmd-screensaver")
}

// BackupPath caches the official hook script for restore-default.
func BackupPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "omarchy-screensaver-backup")
	}
	return filepath.Join(home, ".cache", "omarchy-screensaver-backup")
}

// Catalog returns the effect descriptors in display order.
func Catalog() []Descriptor {
	return []Descriptor{
		{
			Key: "starrynight", Emoji: "⭐", Title: "Star Field",
			Description: "Dynamic celestial dome with realistic twinkle effects.\n\nFeatures meteor showers and astronomical accuracy.\nSupports configurable speed, density, and rotation modes.",
		},
		{
			Key: "starsclean", Emoji: "⭐", Title: "Static Stars",
			Description: "Clean, static starfield with authentic twinkling.\n\nFixed-position stars that simulate atmospheric\ndistortion effects like real celestial observation.",
		},
		{
			Key: "fadeout", Emoji: "🌫️", Title: "Clouds",
			Description: "Soft cloud patterns with gentle fade effects.\n\nCreates subtle, misty screen transitions perfect\nfor idle display protection.",
		},
		{
			Key: "hardrain", Emoji: "🌧️", Title: "Heavy Rain",
			Description: "Intense, realistic rain droplet animation.\n\nDynamic precipitation patterns with realistic\nwater physics and soothing audio-like effects.",
		},
		{
			Key: "rainstorm", Emoji: "🌧️", Title: "Stormy Rain",
			Description: "Dramatic storm effects with multi-layer movement.\n\nCreates intense weather atmosphere with\nmultiple animation layers and dramatic intensity.",
		},
		{
			Key: "fishsaver", Emoji: "🐟", Title: "Fish Aquarium",
			Description: "Animated aquatic life in realistic aquarium.\n\nColorful fish swim with natural movement\npatterns across the screen canvas.",
		},
		{
			Key: "globe", Emoji: "🌍", Title: "Rotating Globe",
			Description: "3D Earth spinning in orbital space view.\n\nRealistic planetary rotation with detailed\nlandmass rendering and atmospheric effects.",
		},
		{
			Key: "cityscape", Emoji: "🏙️", Title: "City Skyline",
			Description: "Urban night landscape with twinkling lights.\n\nCreates evening city view with building\nsilhouettes and authentic night lighting.",
		},
		{
			Key: "spotlight", Emoji: "🔦", Title: "Lighting Effect",
			Description: "Dynamic theatrical spotlight beams.\n\nMoving light effects create dramatic\natmospheric scenes across the display.",
		},
		{
			Key: "matrix", Emoji: "⏯️", Title: "Digital Rain",
			Description: "Classic green matrix falling characters.\n\nAuthentic digital rain effect with scrolling\nalphanumeric streams in traditional green tint.",
		},
		{
			Key: "messages", Emoji: "💬", Title: "Scrolling Text",
			Description: "Animated message display with text scrolling.\n\nConfigurable text notifications and system\nmessages scrolling across the screen.",
		},
		{
			Key: "messages2", Emoji: "💬", Title: "Alt Messages",
			Description: "Alternative scrolling text with varied effects.\n\nAlternative messaging system with different\nanimation styles and presentation modes.",
		},
		{
			Key: "randomizer", Emoji: "🔄", Title: "Random Effects",
			Description: "Generates various random visual patterns.\n\nCycles through different algorithmic\neffects and random animation styles.",
		},
		{
			Key: "paperfire", Emoji: "🎆", Title: "Paper Fire",
			Description: "Realistic fire animation on paper surfaces.\n\nAccurate flame propagation effects with\nburning paper physics simulation.",
		},
		{
			Key: "toastersaver", Emoji: "🍞", Title: "Flying Toasters",
			Description: "Nostalgic flying toast screensaver.\n\nClassic computer-era animated bread products\nflying through retro space background.",
		},
		{
			Key: "lifeforms", Emoji: "🦠", Title: "Constellations",
			Description: "Star creatures that assemble and dissolve.\n\nConstellation figures form from scattered stars,\nhold their shape, then drift apart again.",
		},
		{
			Key: "logo", Emoji: "🏷️", Title: "Logo Display",
			Description: "Static or animated brand logo presentation.\n\nCompany branding display with customizable\nstatic or animated visual elements.",
		},
		{
			Key: "bouncingball", Emoji: "⚽", Title: "Bouncing Ball",
			Description: "Physics-based bouncing ball animation.\n\nRealistic gravity simulation with momentum\nand collision effects across display area.",
		},
		{
			Key: "warp", Emoji: "💫", Title: "Warp Effects",
			Description: "Fluid distortion and liquid warping effects.\n\nPsychedelic surface distortions with organic\nmovement patterns and wave-like animations.",
		},
	}
}
