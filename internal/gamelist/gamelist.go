package gamelist

import (
	"github.com/beevik/etree"
)

const Filename = "gamelist.xml"

const (
	NameElement      = "name"
	PathElement      = "path"
	ImageElement     = "image"
	ThumbnailElement = "thumbnail"
	FanartElement    = "fanart"
	TitleIDElement   = "titleid"
	GameListElement  = "gameList"
	GameElement      = "game"
)

// Field is one child element of a <game> entry.
type Field struct {
	Element string
	Value   string
}

type GameList struct {
	document *etree.Document
}

func New() *GameList {
	return &GameList{
		document: emptyGameList(),
	}
}

func emptyGameList() *etree.Document {
	document := etree.NewDocument()
	document.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	document.CreateElement(GameListElement)
	return document
}

func (gl *GameList) Parse(b []byte) error {
	document := etree.NewDocument()
	if err := document.ReadFromBytes(b); err != nil {
		return err
	}

	if document.SelectElement(GameListElement) == nil {
		document.CreateElement(GameListElement)
	}

	gl.document = document
	return nil
}

func (gl *GameList) root() *etree.Element {
	return gl.document.SelectElement(GameListElement)
}

func (gl *GameList) Len() int {
	return len(gl.root().SelectElements(GameElement))
}

// GetGameElement finds the entry whose child element matches value.
func (gl *GameList) GetGameElement(element, value string) *etree.Element {
	for _, game := range gl.root().SelectElements(GameElement) {
		child := game.FindElement(element)
		if child != nil && child.Text() == value {
			return game
		}
	}
	return nil
}

func (gl *GameList) Contains(element, value string) bool {
	return gl.GetGameElement(element, value) != nil
}

// Value returns the text of element inside the game at path.
func (gl *GameList) Value(path, element string) (string, bool) {
	game := gl.GetGameElement(PathElement, path)
	if game == nil {
		return "", false
	}
	child := game.FindElement(element)
	if child == nil {
		return "", false
	}
	return child.Text(), true
}

func (gl *GameList) AddGameEntry(fields []Field) {
	newGame := gl.root().CreateElement(GameElement)

	for _, field := range fields {
		newGame.CreateElement(field.Element).SetText(field.Value)
	}
}

// AddOrUpdateEntry keys entries by path. Elements not named in fields are
// left alone so scraper data written by other tools survives.
func (gl *GameList) AddOrUpdateEntry(path string, fields []Field) {
	game := gl.GetGameElement(PathElement, path)
	if game == nil {
		gl.AddGameEntry(fields)
		return
	}

	for _, field := range fields {
		if element := game.FindElement(field.Element); element != nil {
			element.SetText(field.Value)
		} else {
			game.CreateElement(field.Element).SetText(field.Value)
		}
	}
}

func (gl *GameList) Save(filepath string) error {
	gl.document.Indent(4)
	return gl.document.WriteToFile(filepath)
}
