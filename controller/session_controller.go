package controller

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"airport-analyser/models"
	"airport-analyser/services/analysis"
	"airport-analyser/utils"
	"airport-analyser/views"
)

// SessionState is a step of the interactive loop.
type SessionState int

const (
	StatePromptAirport SessionState = iota
	StatePromptYear
	StateLoad
	StateReport
	StateSave
	StatePromptAirline
	StateChart
	StatePromptRepeat
	StateDone
)

var stateNames = map[SessionState]string{
	StatePromptAirport: "prompt_airport",
	StatePromptYear:    "prompt_year",
	StateLoad:          "load",
	StateReport:        "report",
	StateSave:          "save",
	StatePromptAirline: "prompt_airline",
	StateChart:         "chart",
	StatePromptRepeat:  "prompt_repeat",
	StateDone:          "done",
}

func (s SessionState) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

// Console prompts.
const (
	promptAirport = "Enter a three-letter departure city code: "
	promptYear    = "Please enter the year required in the format YYYY: "
	promptAirline = "Enter a two-character Airline code to plot a histogram: "
	promptRepeat  = "Do you want to select a new data file? Y/N: "
	bannerWidth   = 70
)

// Loader produces the record table for an airport and year. On failure it
// still returns a usable (empty) table.
type Loader interface {
	Load(airport string, year int) (*models.RecordTable, error)
}

// Saver persists a finished report.
type Saver interface {
	Save(airportName string, year int, report models.MetricsReport) error
}

// ChartRenderer draws the hourly histogram and returns once it is dismissed.
type ChartRenderer interface {
	Render(req views.ChartRequest, table *models.RecordTable) error
}

// SessionDeps are the collaborators of a session.
type SessionDeps struct {
	In        io.Reader
	Out       io.Writer
	Reference *models.Reference
	Validator *Validator
	Loader    Loader
	Saver     Saver
	Chart     ChartRenderer
	Metrics   analysis.Options
}

// SessionController runs the prompt → load → report → save → chart loop.
// It holds no business logic beyond sequencing and input validation; the
// record table of an iteration lives only until the next load.
type SessionController struct {
	deps  SessionDeps
	in    *bufio.Reader
	out   io.Writer
	state SessionState

	// current iteration
	airport string
	year    int
	table   *models.RecordTable
	report  models.MetricsReport
	airline string

	iterations int
}

// NewSessionController prepares a session starting at the airport prompt.
func NewSessionController(deps SessionDeps) *SessionController {
	return &SessionController{
		deps:  deps,
		in:    bufio.NewReader(deps.In),
		out:   deps.Out,
		state: StatePromptAirport,
	}
}

// Iterations returns how many full cycles have completed.
func (s *SessionController) Iterations() int { return s.iterations }

// Run drives the loop until the user declines to continue or input ends.
// Only a failed save is returned as an error.
func (s *SessionController) Run() error {
	for s.state != StateDone {
		next, err := s.step()
		if errors.Is(err, io.EOF) {
			utils.L().Info("input closed in state %s, ending session", s.state)
			s.state = StateDone
			return nil
		}
		if err != nil {
			return err
		}
		if next != s.state {
			utils.L().Debug("session %s -> %s", s.state, next)
		}
		s.state = next
	}
	return nil
}

func (s *SessionController) step() (SessionState, error) {
	switch s.state {
	case StatePromptAirport:
		return s.promptAirport()
	case StatePromptYear:
		return s.promptYear()
	case StateLoad:
		return s.load(), nil
	case StateReport:
		return s.computeReport(), nil
	case StateSave:
		return s.save()
	case StatePromptAirline:
		return s.promptAirline()
	case StateChart:
		return s.chart(), nil
	case StatePromptRepeat:
		return s.promptRepeat()
	default:
		return StateDone, nil
	}
}

func (s *SessionController) promptAirport() (SessionState, error) {
	line, err := s.ask(promptAirport)
	if err != nil {
		return s.state, err
	}
	code, err := s.deps.Validator.Airport(line)
	if err != nil {
		s.println(err.Error())
		return s.state, nil
	}
	s.airport = code
	return StatePromptYear, nil
}

func (s *SessionController) promptYear() (SessionState, error) {
	line, err := s.ask(promptYear)
	if err != nil {
		return s.state, err
	}
	y, err := s.deps.Validator.Year(line)
	if err != nil {
		s.println(err.Error())
		return s.state, nil
	}
	s.year = y
	return StateLoad, nil
}

func (s *SessionController) load() SessionState {
	table, err := s.deps.Loader.Load(s.airport, s.year)
	if table == nil {
		table = models.NewRecordTable(utils.SourceFileName(s.airport, s.year), nil)
	}
	s.table = table
	if err != nil {
		utils.L().Warn("load %s%d: %v", s.airport, s.year, err)
		s.println(fmt.Sprintf("Failed to load CSV: %v", err))
	}

	stars := strings.Repeat("*", bannerWidth)
	s.println(stars)
	s.println(fmt.Sprintf("File %s selected - Planes departing %s %d.",
		utils.SourceFileName(s.airport, s.year), s.airportName(), s.year))
	s.println(stars)
	return StateReport
}

func (s *SessionController) computeReport() SessionState {
	m, err := analysis.ComputeMetrics(s.table, s.deps.Reference, s.deps.Metrics)
	if err != nil {
		utils.L().Error("metrics for %s: %v", s.table.Source, err)
		s.println(fmt.Sprintf("Could not compute metrics: %v", err))
		s.report = nil
		return StatePromptAirline
	}
	s.report = m.Report()
	for _, e := range s.report {
		s.println(e.Label + ": " + e.Value)
	}
	return StateSave
}

func (s *SessionController) save() (SessionState, error) {
	if err := s.deps.Saver.Save(s.airportName(), s.year, s.report); err != nil {
		s.println(fmt.Sprintf("Could not save results: %v", err))
		return s.state, fmt.Errorf("save report: %w", err)
	}
	return StatePromptAirline, nil
}

func (s *SessionController) promptAirline() (SessionState, error) {
	line, err := s.ask(promptAirline)
	if err != nil {
		return s.state, err
	}
	code, err := s.deps.Validator.Airline(line)
	if err != nil {
		s.println(err.Error())
		return s.state, nil
	}
	s.airline = code
	return StateChart, nil
}

func (s *SessionController) chart() SessionState {
	name, _ := s.deps.Reference.AirlineName(s.airline)
	req := views.ChartRequest{
		AirlineCode: s.airline,
		AirlineName: name,
		AirportName: s.airportName(),
		Year:        s.year,
	}
	if err := s.deps.Chart.Render(req, s.table); err != nil {
		utils.L().Error("chart %s: %v", req.Slug(), err)
		s.println(fmt.Sprintf("Could not display chart: %v", err))
	}
	return StatePromptRepeat
}

func (s *SessionController) promptRepeat() (SessionState, error) {
	line, err := s.ask(promptRepeat)
	if err != nil {
		return s.state, err
	}
	s.iterations++
	s.reset()
	if WantsAnother(line) {
		return StatePromptAirport, nil
	}
	s.println("Thank you. End of run")
	return StateDone, nil
}

// reset drops everything owned by the finished iteration.
func (s *SessionController) reset() {
	s.airport, s.year, s.airline = "", 0, ""
	s.table, s.report = nil, nil
}

func (s *SessionController) airportName() string {
	n, _ := s.deps.Reference.AirportName(s.airport)
	return n
}

// ask prints prompt and reads one line. A final line without a newline is
// still returned; io.EOF is returned only when nothing was read.
func (s *SessionController) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		fmt.Fprintln(s.out)
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *SessionController) println(msg string) {
	fmt.Fprintln(s.out, msg)
}
