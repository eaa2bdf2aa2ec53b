package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/shoplist/internal/app"
	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/tui"
	"github.com/idilsaglam/shoplist/internal/ui"
)

// Options carry what root flags and config resolved.
type Options struct {
	File   string // list file
	Log    zerolog.Logger
	Stdout io.Writer
	Stderr io.Writer

	// runTUI replaces the interactive program in tests.
	runTUI func(*model.List) error
}

func (o *Options) defaults() {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.runTUI == nil {
		o.runTUI = tui.Run
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt.defaults()
	if len(args) == 0 {
		PrintHelp(opt.Stderr)
		return 2
	}
	r := runner{opt: opt}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0

	case "ls":
		return r.list()

	case "total":
		return r.total()

	case "ui":
		return r.interactive()

	case "add":
		if len(a) < 2 {
			r.fail("usage: shoplist add <name...> <price>")
			return 2
		}
		return r.add(strings.Join(a[:len(a)-1], " "), a[len(a)-1])

	case "draft":
		return r.draft(a)

	case "confirm":
		if len(a) != 1 && len(a) < 3 {
			r.fail("usage: shoplist confirm <prompt-index> [<name...> <price>]")
			return 2
		}
		n, code := r.index("confirm", a[0])
		if code != 0 {
			return code
		}
		return r.confirm(n, a[1:])

	case "cancel":
		if len(a) != 1 {
			r.fail("usage: shoplist cancel <prompt-index>")
			return 2
		}
		n, code := r.index("cancel", a[0])
		if code != 0 {
			return code
		}
		return r.cancel(n)

	case "rm":
		if len(a) != 1 {
			r.fail("usage: shoplist rm <index>")
			return 2
		}
		n, code := r.index("rm", a[0])
		if code != 0 {
			return code
		}
		return r.remove(n)
	}

	r.fail("unknown subcommand: " + cmd)
	fmt.Fprintln(opt.Stderr)
	PrintHelp(opt.Stderr)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `shoplist - a running shopping list

Usage:
  shoplist [flags] <subcommand> [args]

Subcommands:
  ui                                 Interactive list (saves on quit)
  ls                                 Show listings, prompts and total
  add <name...> <price>              List an item directly
  draft [<name...>] [<price>]        Add a prompt (default "New Item" 0.00)
  confirm <n> [<name...> <price>]    List prompt n, optionally with new name/price
  cancel <n>                         Drop prompt n
  rm <n>                             Move listing n back to the prompts
  total                              Print the running total

Flags:
  --file <path>       list file (env SHOPLIST_FILE, default ./shoplist.json)
  --log <path>        log file, empty to disable (env SHOPLIST_LOG)
  --log-level <lvl>   debug|info|warn|error (env SHOPLIST_LOG_LEVEL)
  --theme <name>      classic|mono (env SHOPLIST_THEME)

Examples:
  shoplist add Milk 1.29
  shoplist draft Olive oil
  shoplist confirm 1 "Olive oil" 6.49
  shoplist rm 2
`)
}

type runner struct {
	opt Options
}

func (r runner) ok(msg string)   { ui.OK(r.opt.Stdout, msg) }
func (r runner) fail(msg string) { ui.Fail(r.opt.Stderr, msg) }

func (r runner) open() (*app.Session, int) {
	s, err := app.Open(r.opt.File, r.opt.Log)
	if err != nil {
		r.fail(err.Error())
		return nil, 1
	}
	return s, 0
}

func (r runner) save(s *app.Session, msg string) int {
	if err := s.Save(); err != nil {
		r.fail(err.Error())
		return 1
	}
	r.ok(msg)
	return 0
}

// index parses a 1-based index argument.
func (r runner) index(cmd, arg string) (int, int) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		r.fail(cmd + ": not a number: " + arg)
		return 0, 2
	}
	return n, 0
}

func (r runner) outOfRange(what string, have, got int) int {
	r.fail(fmt.Sprintf("%s index out of range: have %d, got %d", what, have, got))
	fmt.Fprintln(r.opt.Stderr, ui.Current().Muted.Render("Hint: run `shoplist ls` to see valid indexes"))
	return 2
}

// invalid reports a rejected name or price; anything else is an I/O error.
func (r runner) invalid(cmd string, err error) int {
	r.fail(cmd + ": " + err.Error())
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		return 2
	}
	return 1
}

// -------------- subcommand impls ----------------

func (r runner) list() int {
	s, code := r.open()
	if code != 0 {
		return code
	}
	ui.Panel(r.opt.Stdout, Lines(s.List().Snapshot()))
	return 0
}

func (r runner) total() int {
	s, code := r.open()
	if code != 0 {
		return code
	}
	fmt.Fprintln(r.opt.Stdout, s.List().TotalString())
	return 0
}

func (r runner) interactive() int {
	s, code := r.open()
	if code != 0 {
		return code
	}
	if err := r.opt.runTUI(s.List()); err != nil {
		r.fail("tui: " + err.Error())
		return 1
	}
	return r.save(s, "saved")
}

func (r runner) add(name, price string) int {
	s, code := r.open()
	if code != 0 {
		return code
	}
	it, err := s.List().Add(name, price)
	if err != nil {
		return r.invalid("add", err)
	}
	return r.save(s, fmt.Sprintf("listed %s %s · total %s", it.Name, model.FormatPrice(it.Price), s.List().TotalString()))
}

func (r runner) draft(a []string) int {
	s, code := r.open()
	if code != 0 {
		return code
	}
	d := model.NewDraft()
	switch {
	case len(a) >= 2 && isPrice(a[len(a)-1]):
		d.Name, d.Price = strings.Join(a[:len(a)-1], " "), a[len(a)-1]
	case len(a) > 0:
		d.Name = strings.Join(a, " ")
	}
	s.List().AddDraft(d)
	return r.save(s, "prompt added")
}

func (r runner) confirm(userIndex int, a []string) int {
	s, code := r.open()
	if code != 0 {
		return code
	}
	drafts := s.List().Drafts()
	if userIndex < 1 || userIndex > len(drafts) {
		return r.outOfRange("prompt", len(drafts), userIndex)
	}
	d := drafts[userIndex-1]
	name, price := d.Name, d.Price
	if len(a) > 0 {
		name, price = strings.Join(a[:len(a)-1], " "), a[len(a)-1]
	}
	it, err := s.List().ConfirmDraft(d.ID, name, price)
	if err != nil {
		return r.invalid("confirm", err)
	}
	return r.save(s, fmt.Sprintf("listed %s %s · total %s", it.Name, model.FormatPrice(it.Price), s.List().TotalString()))
}

func (r runner) cancel(userIndex int) int {
	s, code := r.open()
	if code != 0 {
		return code
	}
	drafts := s.List().Drafts()
	if userIndex < 1 || userIndex > len(drafts) {
		return r.outOfRange("prompt", len(drafts), userIndex)
	}
	if err := s.List().CancelDraft(drafts[userIndex-1].ID); err != nil {
		return r.invalid("cancel", err)
	}
	return r.save(s, "prompt cancelled")
}

func (r runner) remove(userIndex int) int {
	s, code := r.open()
	if code != 0 {
		return code
	}
	items := s.List().Listings()
	if userIndex < 1 || userIndex > len(items) {
		return r.outOfRange("listing", len(items), userIndex)
	}
	if _, err := s.List().Delist(items[userIndex-1].ID); err != nil {
		return r.invalid("rm", err)
	}
	return r.save(s, "moved back to prompts · total "+s.List().TotalString())
}

func isPrice(s string) bool {
	_, err := model.ParsePrice(s)
	return err == nil
}
