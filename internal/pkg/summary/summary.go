package summary

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"time"

	"country-exchange-service/internal/domain"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	width  = 600
	height = 350
)

var (
	bgColor   = color.RGBA{R: 240, G: 240, B: 255, A: 255}
	textColor = color.RGBA{R: 20, G: 20, B: 60, A: 255}
)

// Stats is everything the summary image shows. Render is a pure function of
// it; the caller decides where the bytes go.
type Stats struct {
	TotalCountries  int64
	TopFive         []*domain.GDPEntry
	LastRefreshedAt time.Time
}

func Render(stats Stats) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bgColor), image.Point{}, draw.Src)

	drawText(img, 20, 20, "Country Summary Report")
	drawText(img, 20, 60, fmt.Sprintf("Total Countries: %d", stats.TotalCountries))
	drawText(img, 20, 100, "Top 5 by Estimated GDP:")

	printer := message.NewPrinter(language.English)
	y := 130
	for i, entry := range stats.TopFive {
		drawText(img, 40, y, printer.Sprintf("%d. %s    %d", i+1, entry.Name, entry.EstimatedGDP))
		y += 25
	}

	drawText(img, 20, y+20, "Last Refreshed: "+stats.LastRefreshedAt.UTC().Format("2006-01-02 15:04:05Z"))

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode summary png: %w", err)
	}

	return buf.Bytes(), nil
}

func drawText(img *image.RGBA, x, y int, s string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y+basicfont.Face7x13.Ascent),
	}
	d.DrawString(s)
}
