package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/drizzle/client/fonts"
	"github.com/cbodonnell/drizzle/client/objects"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

type MenuScene struct {
	*BaseScene

	onPlay    func()
	onScores  func()
	onExit    func()
	highScore int
	ui        *ebitenui.UI
}

type MenuSceneOptions struct {
	// OnPlay is called when the play button is pressed.
	OnPlay func()
	// OnScores is called when the high scores button is pressed.
	OnScores func()
	// OnExit is called when the exit button is pressed.
	OnExit func()
	// HighScore is the best score saved so far, shown under the title.
	HighScore int
}

var _ Scene = &MenuScene{}

func NewMenuScene(opts MenuSceneOptions) (Scene, error) {
	return &MenuScene{
		BaseScene: NewBaseScene(objects.NewBaseObject("menu-root", nil)),
		onPlay:    opts.OnPlay,
		onScores:  opts.OnScores,
		onExit:    opts.OnExit,
		highScore: opts.HighScore,
	}, nil
}

func (s *MenuScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

func (s *MenuScene) renderUI() {
	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 42, G: 68, B: 112, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 58, G: 91, B: 146, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 30, G: 49, B: 82, A: 255}),
	}

	fontFace := fonts.TTFNormalFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.NRGBA{R: 16, G: 26, B: 43, A: 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    80,
				Left:   280,
				Right:  280,
				Bottom: 60,
			}))),
	)

	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text("DRIZZLE", fonts.TTFLargeFont, color.NRGBA{R: 79, G: 195, B: 247, A: 255}),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	))

	if s.highScore > 0 {
		rootContainer.AddChild(widget.NewText(
			widget.TextOpts.Text(fmt.Sprintf("High Score: %d", s.highScore), fonts.TTFSmallFont, color.NRGBA{R: 176, G: 184, B: 196, A: 255}),
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
		))
	}

	newMenuButton := func(label string, onClick func()) *widget.Button {
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
					Stretch:  true,
				}),
			),
			widget.ButtonOpts.Image(buttonImage),
			widget.ButtonOpts.Text(label, fontFace, &widget.ButtonTextColor{
				Idle:     color.NRGBA{254, 255, 255, 255},
				Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
			}),
			widget.ButtonOpts.TextPadding(widget.Insets{
				Left:   30,
				Right:  30,
				Top:    5,
				Bottom: 5,
			}),
		)
		button.ClickedEvent.AddHandler(func(args interface{}) {
			if onClick != nil {
				onClick()
			}
		})
		return button
	}

	rootContainer.AddChild(newMenuButton("Play", s.onPlay))
	rootContainer.AddChild(newMenuButton("High Scores", s.onScores))
	rootContainer.AddChild(newMenuButton("Exit", s.onExit))

	ui := &ebitenui.UI{
		Container: rootContainer,
	}

	s.ui = ui
}

func (s *MenuScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *MenuScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
