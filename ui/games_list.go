package ui

import (
	"errors"
	"fmt"
	"ryulaunch/catalog"
	"ryulaunch/internal/constants"
	"ryulaunch/internal/stringutil"

	gaba "github.com/BrandonKowalski/gabagool/v2/pkg/gabagool"
	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool/i18n"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
)

type GameListInput struct {
	Games                catalog.Catalog
	LastSelectedIndex    int
	LastSelectedPosition int
	QuitOnBack           bool
}

type GameListOutput struct {
	Action               GameListAction
	SelectedIndex        int
	LastSelectedIndex    int
	LastSelectedPosition int
}

// GameListScreen lists every game in catalog order.
type GameListScreen struct{}

func NewGameListScreen() *GameListScreen {
	return &GameListScreen{}
}

func (s *GameListScreen) Draw(input GameListInput) (ScreenResult[GameListOutput], error) {
	output := GameListOutput{
		Action:               GameListActionBack,
		SelectedIndex:        -1,
		LastSelectedIndex:    input.LastSelectedIndex,
		LastSelectedPosition: input.LastSelectedPosition,
	}

	if input.Games.Len() == 0 {
		s.showEmptyMessage()
		output.Action = GameListActionInfo
		return withCode(output, constants.ExitCodeNoResults), nil
	}

	menuItems := make([]gaba.MenuItem, len(input.Games))
	for i, game := range input.Games {
		menuItems[i] = gaba.MenuItem{
			Text:     fmt.Sprintf("%s [%s]", game.Name, stringutil.ExtensionBadge(game.Extension)),
			Selected: false,
			Focused:  false,
			Metadata: i,
		}
	}

	title := i18n.Localize(&goi18n.Message{ID: "game_list_title", Other: "Library"}, nil)
	options := gaba.DefaultListOptions(title, menuItems)
	options.SmallTitle = true
	options.EnableAction = true

	backItem := FooterBack()
	if input.QuitOnBack {
		backItem = FooterQuit()
	}
	options.FooterHelpItems = []gaba.FooterHelpItem{backItem, FooterInfo(), FooterSelect()}

	options.SelectedIndex = input.LastSelectedIndex
	options.VisibleStartIndex = max(0, input.LastSelectedIndex-input.LastSelectedPosition)

	res, err := gaba.List(options)
	if err != nil {
		if errors.Is(err, gaba.ErrCancelled) {
			return back(output), nil
		}
		gaba.GetLogger().Error("Game list error", "error", err)
		return withCode(output, gaba.ExitCodeError), err
	}

	switch res.Action {
	case gaba.ListActionSelected:
		selected := res.Items[res.Selected[0]].Metadata.(int)
		output.Action = GameListActionSelected
		output.SelectedIndex = selected
		output.LastSelectedIndex = res.Selected[0]
		output.LastSelectedPosition = res.VisiblePosition
		return success(output), nil

	case gaba.ListActionTriggered:
		output.Action = GameListActionInfo
		return withCode(output, constants.ExitCodeInfo), nil
	}

	return back(output), nil
}

func (s *GameListScreen) showEmptyMessage() {
	gaba.ConfirmationMessage(
		i18n.Localize(&goi18n.Message{ID: "game_list_empty", Other: "No .xci or .nsp files were found in the games folder."}, nil),
		ContinueFooter(),
		gaba.MessageOptions{},
	)
}
