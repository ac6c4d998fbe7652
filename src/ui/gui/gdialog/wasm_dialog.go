//go:build js && wasm
// +build js,wasm

package gdialog

import "syscall/js"

func ShowError(title, msg string) {
	js.Global().Call("alert", title+": "+msg)
}
