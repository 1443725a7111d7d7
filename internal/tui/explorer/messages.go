package explorer

import (
	"github.com/msto63/combilex/pkg/lexer"
)

// Message types for tea.Cmd async operations

// lexedMsg carries the result of lexing the input of revision rev
type lexedMsg struct {
	rev    int
	result *lexer.Result
	err    error
}
