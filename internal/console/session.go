package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/awesomegic/gicbank/internal/bank"
	"github.com/awesomegic/gicbank/internal/render"
)

const (
	greeting = "Welcome to AwesomeGIC Bank! What would you like to do?"
	followUp = "Is there anything else you'd like to do?"
	farewell = "\nThank you for banking with AwesomeGIC Bank.\nHave a nice day!"

	actionPrompt = `
[T] Input transactions
[I] Define interest rules
[P] Print statement
[Q] Quit
> `

	transactionPrompt = `
Please enter transaction details in <Date> <Account> <Type> <Amount> format
(or enter blank to go back to main menu):
> `

	rulePrompt = `
Please enter interest rules details in <Date> <RuleId> <Rate in %> format
(or enter blank to go back to main menu):
> `

	statementPrompt = `
Please enter account and month to generate the statement <Account> <Year><Month>
(or enter blank to go back to main menu):
> `
)

// Session drives the interactive menu loop over a bank service. Input and
// output are injected so tests can script a whole conversation.
type Session struct {
	svc *bank.Service
	in  *bufio.Scanner
	out io.Writer
}

// NewSession creates a session reading from in and writing to out.
func NewSession(svc *bank.Service, in io.Reader, out io.Writer) *Session {
	return &Session{svc: svc, in: bufio.NewScanner(in), out: out}
}

// Run executes the menu loop until the user quits or input ends.
func (s *Session) Run() error {
	option, ok := s.prompt(greeting + actionPrompt)
	for ok && strings.ToLower(option) != "q" {
		switch strings.ToLower(option) {
		case "t":
			s.inputTransaction()
		case "i":
			s.defineRule()
		case "p":
			s.printStatement()
		default:
			fmt.Fprintln(s.out, "Invalid option selected. Please re-enter.")
		}
		option, ok = s.prompt(followUp + actionPrompt)
	}
	fmt.Fprintln(s.out, farewell)
	return nil
}

func (s *Session) inputTransaction() {
	line, ok := s.prompt(transactionPrompt)
	if !ok || line == "" {
		return
	}
	in, err := ParseTransactionInput(line)
	if err != nil {
		fmt.Fprintf(s.out, "%s\n\n", err)
		return
	}
	txns, err := s.svc.InputTransaction(in.Account, in.Date, in.Kind, in.Amount)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid transaction! %s\n\n", rootMessage(err))
		return
	}
	fmt.Fprintf(s.out, "\n%s\n", render.TransactionTable(in.Account, txns))
}

func (s *Session) defineRule() {
	line, ok := s.prompt(rulePrompt)
	if !ok || line == "" {
		return
	}
	in, err := ParseRuleInput(line)
	if err != nil {
		fmt.Fprintf(s.out, "%s\n\n", err)
		return
	}
	rules, err := s.svc.DefineRule(in.Date, in.RuleID, in.Rate)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid interest rule! %s\n\n", rootMessage(err))
		return
	}
	fmt.Fprintf(s.out, "\n%s\n", render.RuleTable(rules))
}

func (s *Session) printStatement() {
	line, ok := s.prompt(statementPrompt)
	if !ok || line == "" {
		return
	}
	in, err := ParseStatementInput(line)
	if err != nil {
		fmt.Fprintf(s.out, "%s\n\n", err)
		return
	}
	st, err := s.svc.Statement(in.Account, in.Year, in.Month)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid statement request! %s\n\n", rootMessage(err))
		return
	}
	fmt.Fprintf(s.out, "\n%s\n", render.StatementTable(st))
}

// prompt prints a prompt and reads one trimmed line. ok is false once
// input is exhausted, which ends the session like a quit.
func (s *Session) prompt(text string) (string, bool) {
	fmt.Fprint(s.out, text)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// rootMessage strips the sentinel suffix that Append and Define wrap into
// their errors, leaving the user-facing detail text.
func rootMessage(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		msg = msg[:i]
	}
	return msg
}
