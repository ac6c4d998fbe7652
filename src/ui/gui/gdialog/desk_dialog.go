//go:build !js && !wasm
// +build !js,!wasm

package gdialog

import "github.com/sqweek/dialog"

// ShowError pops a native message box, used when the window cannot run.
func ShowError(title, msg string) {
	dialog.Message("%s", msg).Title(title).Error()
}
