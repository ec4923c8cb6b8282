package gdialog

import (
	"github.com/sqweek/dialog"
)

// Info shows a blocking message box
func Info(title, msg string) {
	dialog.Message("%s", msg).Title(title).Info()
}

// Confirm asks a yes/no question
func Confirm(title, msg string) bool {
	return dialog.Message("%s", msg).Title(title).YesNo()
}
