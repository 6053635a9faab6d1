package game

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/pulse-drift/internal/config"
	"github.com/iburimskiy/pulse-drift/internal/page"
)

const (
	videoLoop    = 6 * time.Second
	videoStreaks = 18
	cardGap      = 24
	cardPadding  = 22
)

// sectionFrame is where a revealed section draws this frame.
type sectionFrame struct {
	top   float64 // viewport-relative, logical, including reveal offset
	alpha float64
}

func (g *Game) frameFor(s *page.Section, now time.Duration) sectionFrame {
	eased := easeOutCubic(s.RevealProgress(now))
	return sectionFrame{
		top:   s.Top - g.scrollY + config.RevealOffset*(1-eased),
		alpha: eased,
	}
}

func (g *Game) visible(s *page.Section) bool {
	return s.Top+s.Height >= g.scrollY && s.Top <= g.scrollY+g.outsideH
}

func (g *Game) fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	s := g.scale
	vector.DrawFilledRect(dst, float32(x*s), float32(y*s), float32(w*s), float32(h*s), clr, false)
}

func (g *Game) strokeRect(dst *ebiten.Image, x, y, w, h, width float64, clr color.Color) {
	s := g.scale
	vector.StrokeRect(dst, float32(x*s), float32(y*s), float32(w*s), float32(h*s), float32(width*s), clr, true)
}

func (g *Game) drawPage(screen *ebiten.Image, now time.Duration) {
	screen.Fill(config.BackgroundColor)

	for _, s := range g.layout.Sections {
		if !g.visible(s) {
			continue
		}
		f := g.frameFor(s, now)
		switch s.ID {
		case page.HeroSection:
			g.drawHero(screen, s, f)
		case page.FeaturesSection:
			g.drawFeatures(screen, f)
		case page.ShowcaseSection:
			g.drawShowcase(screen, s, f, now)
		case page.TimelineSection:
			g.drawTimeline(screen, f)
		}
	}
	g.drawFooter(screen)
}

// drawHeading draws a section title and lead paragraph and returns the
// logical y below them.
func (g *Game) drawHeading(screen *ebiten.Image, c page.Copy, f sectionFrame) float64 {
	col := g.layout.Column
	y := f.top + col.Y
	y += g.typo.draw(screen, styleSectionTitle, []string{c.Title}, col.X, y, config.TextColor, f.alpha)
	y += 12
	g.typo.drawWrapped(screen, styleBody, c.Text, col.X, y, col.W*0.75, config.MutedTextColor, f.alpha)
	return f.top + col.Y + 150
}

func (g *Game) drawHero(screen *ebiten.Image, s *page.Section, f sectionFrame) {
	col := g.layout.Column
	y := f.top + s.Height*0.2

	g.typo.drawTracked(screen, styleKicker, page.Kicker(), col.X, y, page.KickerTracking, config.TextColor, f.alpha*0.6)
	y += 32
	y += g.typo.draw(screen, styleHeroTitle, []string{page.HeroTitle}, col.X, y, config.AccentColor, f.alpha)
	y += 16
	y += g.typo.drawWrapped(screen, styleBody, page.HeroDescription, col.X, y, math.Min(col.W*0.55, 620), config.TextColor, f.alpha)
	y += 28

	x := col.X
	for i, label := range []string{page.PrimaryAction, page.SecondaryAction} {
		w := g.typo.width(styleBody, label) + 48
		if i == 0 {
			g.fillRect(screen, x, y, w, 48, withAlpha(config.AccentColor, f.alpha))
		} else {
			g.strokeRect(screen, x, y, w, 48, 2, withAlpha(config.AccentAltColor, f.alpha))
		}
		g.typo.draw(screen, styleBody, []string{label}, x+24, y+12, config.TextColor, f.alpha)
		x += w + 16
	}

	g.drawCar(screen, s, f)
}

func (g *Game) drawCar(screen *ebiten.Image, s *page.Section, f sectionFrame) {
	img := g.car.Image(g.scale)
	col := g.layout.Column

	cx := col.X + col.W - carWidth*0.45
	cy := f.top + s.Height*0.62 + g.parallax.OffsetY()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-carWidth*g.scale/2, -carHeight*g.scale/2)
	op.GeoM.Rotate(g.parallax.Rotation())
	op.GeoM.Translate(cx*g.scale, cy*g.scale)
	op.ColorScale.ScaleAlpha(float32(f.alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (g *Game) drawFeatures(screen *ebiten.Image, f sectionFrame) {
	col := g.layout.Column
	y := g.drawHeading(screen, page.FeaturesCopy, f)

	cardW := (col.W - cardGap*(config.FeatureColumns-1)) / config.FeatureColumns
	for i, feat := range page.Features {
		cx := col.X + float64(i%config.FeatureColumns)*(cardW+cardGap)
		cy := y + float64(i/config.FeatureColumns)*(config.FeatureCardH+cardGap)

		g.fillRect(screen, cx, cy, cardW, config.FeatureCardH, withAlpha(config.CardColor, f.alpha))
		g.strokeRect(screen, cx, cy, cardW, config.FeatureCardH, 1, withAlpha(config.CardBorderColor, f.alpha))

		g.typo.draw(screen, styleIcon, []string{feat.Icon}, cx+cardPadding, cy+cardPadding-6, config.AccentAltColor, f.alpha)
		g.typo.draw(screen, styleCardTitle, []string{feat.Title}, cx+cardPadding+44, cy+cardPadding, config.TextColor, f.alpha)
		g.typo.drawWrapped(screen, styleSmall, feat.Description, cx+cardPadding, cy+cardPadding+48, cardW-2*cardPadding, config.MutedTextColor, f.alpha)
	}
}

func (g *Game) drawShowcase(screen *ebiten.Image, s *page.Section, f sectionFrame, now time.Duration) {
	g.drawHeading(screen, page.ShowcaseCopy, f)

	r := g.layout.Canvas
	x, y := r.X, r.Y-s.Top+f.top
	g.drawVideo(screen, x, y, r.W, r.H, now, f.alpha)

	if img := g.canvas.Image(); img != nil {
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(r.W*g.scale/float64(b.Dx()), r.H*g.scale/float64(b.Dy()))
		op.GeoM.Translate(x*g.scale, y*g.scale)
		op.ColorScale.ScaleAlpha(float32(f.alpha))
		screen.DrawImage(img, op)
	}

	g.drawMeter(screen, x, y+r.H-48, r.W, 40, f.alpha)
	g.strokeRect(screen, x, y, r.W, r.H, 1, withAlpha(config.CardBorderColor, f.alpha))
}

// drawVideo stands in for the looping showcase clip: neon traffic streaks
// crossing a dark panel, repeating every videoLoop.
func (g *Game) drawVideo(screen *ebiten.Image, x, y, w, h float64, now time.Duration, alpha float64) {
	g.fillRect(screen, x, y, w, h, withAlpha(config.VideoColor, alpha))

	phase := float64(now%videoLoop) / float64(videoLoop)
	for i := 0; i < videoStreaks; i++ {
		seed := float64(i) * 0.618
		lane := y + h*(0.2+0.6*(seed-math.Floor(seed)))
		length := 80 + 60*math.Mod(seed*3, 1)
		pos := math.Mod(phase*float64(1+i%3)+seed, 1)
		sx := x - length + pos*(w+length)

		clr := config.AccentColor
		if i%2 == 1 {
			clr = config.AccentAltColor
		}
		x0, x1 := math.Max(sx, x), math.Min(sx+length, x+w)
		if x1 <= x0 {
			continue
		}
		vector.StrokeLine(screen,
			float32(x0*g.scale), float32(lane*g.scale),
			float32(x1*g.scale), float32(lane*g.scale),
			float32(2*g.scale), withAlpha(clr, alpha*0.35), true)
	}
}

// drawMeter shows the soundtrack level bands along the bottom of the showcase.
func (g *Game) drawMeter(screen *ebiten.Image, x, y, w, h, alpha float64) {
	levels := g.music.Levels()
	if len(levels) == 0 {
		return
	}
	bw := w / float64(len(levels))
	for i, v := range levels {
		bh := math.Max(2, clamp01(v)*h)
		clr := config.AccentColor
		if i%2 == 1 {
			clr = config.AccentAltColor
		}
		g.fillRect(screen, x+float64(i)*bw+1, y+h-bh, bw-2, bh, withAlpha(clr, alpha*0.7))
	}
}

func (g *Game) drawTimeline(screen *ebiten.Image, f sectionFrame) {
	col := g.layout.Column
	y := g.drawHeading(screen, page.TimelineCopy, f)

	lineX := col.X + 10
	last := y + float64(len(page.Timeline)-1)*config.TimelineItemH
	vector.StrokeLine(screen,
		float32(lineX*g.scale), float32((y+10)*g.scale),
		float32(lineX*g.scale), float32((last+10)*g.scale),
		float32(2*g.scale), withAlpha(config.CardBorderColor, f.alpha), true)

	for i, m := range page.Timeline {
		iy := y + float64(i)*config.TimelineItemH
		vector.DrawFilledCircle(screen, float32(lineX*g.scale), float32((iy+10)*g.scale), float32(8*g.scale),
			withAlpha(config.AccentColor, f.alpha), true)
		g.typo.draw(screen, styleCardTitle, []string{m.Title}, col.X+40, iy, config.TextColor, f.alpha)
		g.typo.drawWrapped(screen, styleSmall, m.Text, col.X+40, iy+34, col.W*0.7, config.MutedTextColor, f.alpha)
	}
}

func (g *Game) drawFooter(screen *ebiten.Image) {
	top := g.layout.Height - config.FooterHeight - g.scrollY
	if top > g.outsideH {
		return
	}
	line := page.Footer(g.year)
	x := (g.layout.Width - g.typo.width(styleSmall, line)) / 2
	g.typo.draw(screen, styleSmall, []string{line}, x, top+30, config.MutedTextColor, 0.8)
}
