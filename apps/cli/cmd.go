package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"syscall"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/jmoiron/sqlx"
	pkgerrors "github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/Ayushpund/Acharya/core"
	"github.com/Ayushpund/Acharya/core/dashboard"
	"github.com/Ayushpund/Acharya/core/session"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	svc        *dashboard.Service
	db         *sqlx.DB
	translator ut.Translator
	out        io.Writer
	videoDelay time.Duration
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  register -name NAME -age AGE [-interest INTEREST] - register the student; the password will be prompted next")
	fmt.Fprintln(cli.out, "  me - show the registered student")
	fmt.Fprintln(cli.out, "  logout - clear the local session")
	fmt.Fprintln(cli.out, "  catalog [-search QUERY] - list the catalog courses")
	fmt.Fprintln(cli.out, "  enroll -course COURSE_ID - enroll in a catalog course")
	fmt.Fprintln(cli.out, "  enrollments - list enrolled courses with their progress")
	fmt.Fprintln(cli.out, "  complete -course COURSE_ID -url URL - mark a learning material as completed")
	fmt.Fprintln(cli.out, "  watch -course COURSE_ID -url URL - watch a video material until it is completed")
	fmt.Fprintln(cli.out, "  overview - show the progress overview")
	fmt.Fprintln(cli.out, "  recommend - show AI course recommendations")
	fmt.Fprintln(cli.out, "  complete-recommended -title TITLE -url URL - mark a recommended material as completed")
	fmt.Fprintln(cli.out, "  migrate COMMAND [ARGS] - run a database migration command (up, down, status, version...)")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	registerCmd := flag.NewFlagSet("register", flag.ContinueOnError)
	registerName := registerCmd.String("name", "", "The student's full name.")
	registerAge := registerCmd.Int("age", 0, "The student's age.")
	registerInterest := registerCmd.String("interest", "", "A course or topic the student is interested in.")

	catalogCmd := flag.NewFlagSet("catalog", flag.ContinueOnError)
	catalogSearch := catalogCmd.String("search", "", "Filter courses by title, category, description or instructor.")

	enrollCmd := flag.NewFlagSet("enroll", flag.ContinueOnError)
	enrollCourse := enrollCmd.String("course", "", "The catalog course id.")

	completeCmd := flag.NewFlagSet("complete", flag.ContinueOnError)
	completeCourse := completeCmd.String("course", "", "The enrolled course id.")
	completeURL := completeCmd.String("url", "", "The learning material url.")

	watchCmd := flag.NewFlagSet("watch", flag.ContinueOnError)
	watchCourse := watchCmd.String("course", "", "The enrolled course id.")
	watchURL := watchCmd.String("url", "", "The video material url.")

	completeRecCmd := flag.NewFlagSet("complete-recommended", flag.ContinueOnError)
	completeRecTitle := completeRecCmd.String("title", "", "The recommended material title.")
	completeRecURL := completeRecCmd.String("url", "", "The recommended material url.")

	for _, fs := range []*flag.FlagSet{registerCmd, catalogCmd, enrollCmd, completeCmd, watchCmd, completeRecCmd} {
		fs.SetOutput(cli.out)
	}

	switch args[1] {
	case "register":
		if err := registerCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *registerName == "" || *registerAge == 0 {
			registerCmd.Usage()
			return errHelp
		}
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			registerCmd.Usage()
			return errHelp
		}
		return cli.register(*registerName, *registerAge, *registerInterest, string(pwd))
	case "me":
		return cli.me()
	case "logout":
		return cli.logout()
	case "catalog":
		if err := catalogCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.catalog(*catalogSearch)
	case "enroll":
		if err := enrollCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *enrollCourse == "" {
			enrollCmd.Usage()
			return errHelp
		}
		return cli.enroll(*enrollCourse)
	case "enrollments":
		return cli.enrollments()
	case "complete":
		if err := completeCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *completeCourse == "" || *completeURL == "" {
			completeCmd.Usage()
			return errHelp
		}
		return cli.complete(*completeCourse, *completeURL)
	case "watch":
		if err := watchCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *watchCourse == "" || *watchURL == "" {
			watchCmd.Usage()
			return errHelp
		}
		return cli.watch(*watchCourse, *watchURL)
	case "overview":
		return cli.overview()
	case "recommend":
		return cli.recommend()
	case "complete-recommended":
		if err := completeRecCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *completeRecURL == "" {
			completeRecCmd.Usage()
			return errHelp
		}
		return cli.completeRecommended(*completeRecTitle, *completeRecURL)
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

// describe renders err for the terminal, listing field errors one per line.
func (cli *commandLine) describe(err error) string {
	if pkgerrors.Cause(err) == session.ErrNoStudent {
		return "no student registered yet; run the register command first"
	}
	fldErrs, ok := core.TranslateErrors(err, cli.translator)
	if !ok {
		return err.Error()
	}
	lines := make([]string, 0, len(fldErrs))
	for fld, msg := range fldErrs {
		lines = append(lines, fmt.Sprintf("  %s: %s", fld, msg))
	}
	sort.Strings(lines)
	return "invalid input\n" + strings.Join(lines, "\n")
}
