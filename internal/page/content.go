package page

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Meta is the document metadata shown as the window title and in logs.
var Meta = struct {
	Title       string
	Description string
}{
	Title:       "Pulse Drift — 4K Cyber Racer",
	Description: "Immerse yourself in Pulse Drift, the definitive 4K neon hypercar game with cinematic racing, adaptive AI, and a gravity-teasing soundtrack.",
}

// Hero copy.
const (
	HeroKicker      = "Neon Racing Universe"
	HeroTitle       = "Pulse Drift"
	HeroDescription = "Sculpted for 4K dreamers and competitive racers, Pulse Drift fuses precision-engineered hypercars with a " +
		"living neon metropolis. Glide through vertical circuits, orchestrate perfect drifts, and command the " +
		"soundtrack of a city that pulses with your every move."
	PrimaryAction   = "Enter the Grid"
	SecondaryAction = "Watch the Vision"
)

// KickerTracking is the extra space after each kicker letter, in ems.
const KickerTracking = 0.6

// Kicker is the hero kicker as displayed: upper-cased.
func Kicker() string {
	return cases.Upper(language.English).String(HeroKicker)
}

// Feature is one card of the feature grid.
type Feature struct {
	Title       string
	Description string
	Icon        string
}

// Milestone is one entry of the launch timeline.
type Milestone struct {
	Title string
	Text  string
}

// Copy holds a section heading and its lead paragraph.
type Copy struct {
	Title string
	Text  string
}

var FeaturesCopy = Copy{
	Title: "Engineered for Ultra-Cinematic Play",
	Text: "Every kilometer is crafted for towering LED walls and razor-sharp OLED rigs. Pulse Drift blends volumetric " +
		"fog, particle turbulence, and adaptive neon reflections to fill 4K canvases with pure velocity art.",
}

var ShowcaseCopy = Copy{
	Title: "Cinematic Showcase",
	Text: "Drift through hovering highways while the skyline shimmers in photonic rain. Our art pipeline blends " +
		"raymarched atmospherics, holographic signage, and particle-reactive tracks so every frame feels born from a " +
		"sci-fi blockbuster.",
}

var TimelineCopy = Copy{
	Title: "Launch Trajectory",
	Text: "From prototype ignition to global arenas, the Pulse Drift roadmap accelerates through three legendary " +
		"milestones. Strap in for the ride.",
}

var Features = []Feature{
	{
		Title:       "Adaptive Hyperdrive",
		Description: "Dynamic physics-driven boosters respond to every drift angle, delivering a seamless fusion of speed, grip, and cinematic control.",
		Icon:        "►",
	},
	{
		Title:       "Neural Road AI",
		Description: "Race through cities that reconfigure in real time, powered by synaptic AI that predicts your racing style and builds stunning worlds on the fly.",
		Icon:        "●",
	},
	{
		Title:       "Pulsewave Multiplayer",
		Description: "Heart-thumping cooperative raids and rivalries with zero-latency netcode and haptic synced feedback across every cockpit.",
		Icon:        "◊",
	},
	{
		Title:       "4K Raytrace Suite",
		Description: "Next-gen lighting layers and volumetric neon atmospherics tuned for ultra-wide 4K displays and high-refresh competitive rigs.",
		Icon:        "■",
	},
}

var Timeline = []Milestone{
	{
		Title: "Prototype Ignite",
		Text:  "Vertical slice playable on PC with two neon mega-city districts and 20 legendary hypercars to master.",
	},
	{
		Title: "Legends Closed Beta",
		Text:  "Global leaderboard rollout, esports-ready spectator tools, and cinematic replay editor for content creators.",
	},
	{
		Title: "Full Spectrum Launch",
		Text:  "Cross-platform release with raytraced storm tracks, adaptive weather, and yearly narrative expansions.",
	},
}

// Footer renders the footer line for the given year.
func Footer(year int) string {
	return fmt.Sprintf("© %d Pulse Drift Studios. All rights reserved. Crafted for 4K dreamers.", year)
}
