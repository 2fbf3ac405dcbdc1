package ui

import (
	gaba "github.com/BrandonKowalski/gabagool/v2/pkg/gabagool"
	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool/i18n"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
)

func footerItem(button, msgID, fallback string) gaba.FooterHelpItem {
	return gaba.FooterHelpItem{
		ButtonName: button,
		HelpText:   i18n.Localize(&goi18n.Message{ID: msgID, Other: fallback}, nil),
	}
}

func FooterContinue() gaba.FooterHelpItem { return footerItem("A", "button_continue", "Continue") }
func FooterLaunch() gaba.FooterHelpItem   { return footerItem("A", "button_launch", "Launch") }
func FooterSelect() gaba.FooterHelpItem   { return footerItem("A", "button_select", "Select") }
func FooterBack() gaba.FooterHelpItem     { return footerItem("B", "button_back", "Back") }
func FooterQuit() gaba.FooterHelpItem     { return footerItem("B", "button_quit", "Quit") }
func FooterQR() gaba.FooterHelpItem       { return footerItem("X", "button_title_id", "Title ID") }
func FooterInfo() gaba.FooterHelpItem     { return footerItem("X", "button_info", "Info") }
func FooterRescan() gaba.FooterHelpItem   { return footerItem("X", "button_rescan", "Rescan") }

func ContinueFooter() []gaba.FooterHelpItem {
	return []gaba.FooterHelpItem{FooterContinue()}
}

func ContinueOrQuitFooter() []gaba.FooterHelpItem {
	return []gaba.FooterHelpItem{FooterQuit(), FooterContinue()}
}
