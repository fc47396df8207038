// Command granny-query answers catalog questions without the terminal UI:
// search, event filtering, the carousel preview, form validation and
// iCalendar export/import. Results are printed as JSON.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"careergranny/internal/calendar"
	"careergranny/internal/catalog"
	"careergranny/internal/domain"
	"careergranny/internal/format"
	"careergranny/internal/logic"
)

const usage = `usage: granny-query [-data file] <command> [args]

commands:
  search <query>           search careers, skills, resources and events
  filter <category|all>    list events of one category
  categories               list the event filter bar
  event <id>               one event by id
  preview [-n count]       first events, as shown in the carousel
  validate [-name ..] [-email ..] [-subject ..] [-message ..]
                           check a contact form
  export-ics <path|->      write the events as iCalendar
  import <file.ics>        read events from an iCalendar file
`

var errUsage = errors.New("invalid usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("granny-query", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dataFile := fs.String("data", "", "Catalog YAML or .ics file (embedded catalog when empty)")
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	err := dispatch(fs.Arg(0), fs.Args()[1:], *dataFile, stdout, stderr)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "%v\n\n%s", err, usage)
		return 2
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
}

func dispatch(command string, args []string, dataFile string, stdout, stderr io.Writer) error {
	// import reads its own file and never needs the catalog
	if command == "import" {
		if len(args) != 1 {
			return fmt.Errorf("%w: import needs a file", errUsage)
		}
		events, err := calendar.ImportFile(args[0])
		if err != nil {
			return err
		}
		return writeJSON(stdout, eventViews(events))
	}

	cat, _, err := catalog.Load(dataFile)
	if err != nil {
		return err
	}

	switch command {
	case "search":
		outcome := logic.Search(strings.Join(args, " "), cat.Search)
		return writeJSON(stdout, searchResult{
			Query:      outcome.Query,
			EmptyQuery: outcome.EmptyQuery,
			Results:    outcome.Records,
		})

	case "filter":
		if len(args) != 1 {
			return fmt.Errorf("%w: filter needs one category", errUsage)
		}
		return writeJSON(stdout, eventViews(logic.FilterEvents(args[0], cat.Events)))

	case "categories":
		return writeJSON(stdout, logic.FilterOptions(cat.Events))

	case "event":
		if len(args) != 1 {
			return fmt.Errorf("%w: event needs an id", errUsage)
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: invalid event id %q", errUsage, args[0])
		}
		store := logic.NewMemoryCatalogStore(cat.Search, cat.Events, cat.Stats)
		e, ok := store.EventByID(id)
		if !ok {
			return fmt.Errorf("no event with id %d", id)
		}
		return writeJSON(stdout, eventViews([]domain.EventRecord{e})[0])

	case "preview":
		fs := flag.NewFlagSet("preview", flag.ContinueOnError)
		fs.SetOutput(stderr)
		n := fs.Int("n", logic.DefaultPreviewSize, "number of events")
		if err := fs.Parse(args); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		return writeJSON(stdout, eventViews(logic.Preview(cat.Events, *n)))

	case "validate":
		var in domain.FormInput
		fs := flag.NewFlagSet("validate", flag.ContinueOnError)
		fs.SetOutput(stderr)
		fs.StringVar(&in.Name, "name", "", "sender name")
		fs.StringVar(&in.Email, "email", "", "sender email")
		fs.StringVar(&in.Subject, "subject", "", "subject")
		fs.StringVar(&in.Message, "message", "", "message")
		if err := fs.Parse(args); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		return writeJSON(stdout, validation(in))

	case "export-ics":
		if len(args) != 1 {
			return fmt.Errorf("%w: export-ics needs a path or -", errUsage)
		}
		if args[0] == "-" {
			return calendar.Export(stdout, cat.Events, time.Now())
		}
		if err := calendar.ExportFile(args[0], cat.Events, time.Now()); err != nil {
			return err
		}
		return writeJSON(stdout, map[string]any{"path": args[0], "count": len(cat.Events)})
	}

	return fmt.Errorf("%w: unknown command %q", errUsage, command)
}

type searchResult struct {
	Query      string                `json:"query"`
	EmptyQuery bool                  `json:"empty_query"`
	Results    []domain.SearchRecord `json:"results"`
}

// eventView adds the display date to an event
type eventView struct {
	domain.EventRecord
	DisplayDate string `json:"display_date"`
}

func eventViews(events []domain.EventRecord) []eventView {
	out := make([]eventView, len(events))
	for i, e := range events {
		out[i] = eventView{EventRecord: e, DisplayDate: format.EventDateOrRaw(e.Date)}
	}
	return out
}

type validationResult struct {
	Valid  bool   `json:"valid"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason,omitempty"`
}

func validation(in domain.FormInput) validationResult {
	err := logic.ValidateForm(in)
	if err == nil {
		return validationResult{Valid: true}
	}
	var verr *logic.ValidationError
	if errors.As(err, &verr) {
		return validationResult{Field: verr.Field, Reason: verr.Reason}
	}
	return validationResult{Reason: err.Error()}
}

func writeJSON(w io.Writer, v any) error {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
