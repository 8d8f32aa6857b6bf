package main

import (
	"os"

	"golang.org/x/term"
)

// termSize возвращает размеры терминала для файла вывода.
func termSize(f *os.File) (width, height int, err error) {
	return term.GetSize(int(f.Fd()))
}
