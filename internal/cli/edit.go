package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/swatchbook/internal/palette"
	"github.com/jmylchreest/swatchbook/internal/service"
)

// errQuit ends the editing loop.
var errQuit = errors.New("quit")

func newEditCmd(a *app) *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a palette interactively",
		Long: `Start an interactive editing session. Commands are read one per line; type
"help" for the list. Errors are reported and the session carries on.

The session starts from --input, --colours or the palette service when one of
them is given, and from an empty palette otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, _, err := src.request(cmd)
			if err != nil {
				return err
			}
			ed := &editor{
				app:     a,
				ctx:     cmd.Context(),
				session: a.newSession(),
				out:     cmd.OutOrStdout(),
				preview: a.showPreview(cmd.OutOrStdout()),
				request: req,
			}

			if src.given() {
				r, preset, err := src.resolve(cmd.Context(), cmd, a, ed.session)
				if err != nil {
					return err
				}
				if preset != nil {
					fmt.Fprintf(ed.out, "Recommendation: %s\n", preset.Recommendation)
				}
				ed.apply(r)
			}

			in := cmd.InOrStdin()
			if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				ed.prompt = "swatchbook> "
			}
			return ed.run(in)
		},
	}

	src.register(cmd)
	return cmd
}

// editor is an interactive session bound to one palette.
type editor struct {
	app     *app
	ctx     context.Context
	session *palette.Session
	out     io.Writer
	prompt  string
	preview bool

	// request is built from the generation flags the session was started with.
	request service.Request
}

type editCommand struct {
	usage string
	help  string
	run   func(ed *editor, args []string) error
}

var editCommands map[string]editCommand

func init() {
	editCommands = map[string]editCommand{
		"list":     {"list", "show the palette", (*editor).list},
		"select":   {"select N", "select colour N (1-based)", (*editor).selectColour},
		"hue":      {"hue H", "set the selected colour's hue (saturation becomes 60)", (*editor).hue},
		"light":    {"light L", "set the selected colour's lightness (saturation becomes 60)", (*editor).light},
		"hsl":      {"hsl H L", "set hue and lightness together", (*editor).hueLight},
		"wheel":    {"wheel X Y", "pick a hue from a point relative to the wheel centre", (*editor).wheel},
		"alpha":    {"alpha A", "set the selected colour's alpha (0-1)", (*editor).alpha},
		"hex":      {"hex HEX", "replace the selected colour", (*editor).hex},
		"rotate":   {"rotate HEX", "rotate the whole palette to HEX's hue", (*editor).rotate},
		"add":      {"add", "append the chosen colour as a new swatch", (*editor).add},
		"delete":   {"delete", "delete the selected colour", (*editor).remove},
		"roles":    {"roles", "show the role assignment", (*editor).roles},
		"layout":   {"layout", "show the page layout preview", (*editor).layout},
		"triad":    {"triad", "show the triad of the chosen colour", (*editor).triad},
		"harmony":  {"harmony", "show harmony schemes around the base hue", (*editor).harmony},
		"contrast": {"contrast", "show the contrast summary", (*editor).contrast},
		"export":   {"export FORMAT", "print design tokens (css, tailwind, figma)", (*editor).export},
		"load":     {"load PATH", "replace the palette from a JSON payload", (*editor).load},
		"generate": {"generate [SENTIMENT [IDEA...]]", "replace the palette from the palette service", (*editor).generate},
		"suggest":  {"suggest [SENTIMENT [IDEA...]]", "show AI variants without changing the palette", (*editor).suggest},
		"help":     {"help", "show this help", (*editor).help},
		"quit":     {"quit", "leave the session", func(*editor, []string) error { return errQuit }},
	}
}

var editAliases = map[string]string{
	"ls":   "list",
	"del":  "delete",
	"rm":   "delete",
	"exit": "quit",
	"?":    "help",
}

func (ed *editor) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		if ed.prompt != "" {
			fmt.Fprint(ed.out, ed.prompt)
		}
		if !scanner.Scan() {
			break
		}
		if err := ed.exec(scanner.Text()); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			ed.app.bad.Fprintf(ed.out, "Error: %v\n", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read commands: %w", err)
	}
	return nil
}

// exec runs one command line.
func (ed *editor) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	name := strings.ToLower(fields[0])
	if alias, ok := editAliases[name]; ok {
		name = alias
	}
	c, ok := editCommands[name]
	if !ok {
		return fmt.Errorf("unknown command %q (type help)", fields[0])
	}
	return c.run(ed, fields[1:])
}

// apply loads a result into the session, treating an empty palette as a
// neutral message.
func (ed *editor) apply(r *palette.Result) {
	if err := ed.session.ApplyResult(r); err != nil {
		if errors.Is(err, palette.ErrEmptyPalette) {
			fmt.Fprintln(ed.out, emptyPaletteMessage)
			return
		}
		ed.app.bad.Fprintf(ed.out, "Error: %v\n", err)
		return
	}
	ed.list(nil)
}

// changed reports the selected colour after an edit.
func (ed *editor) changed() {
	cur, err := ed.session.Current()
	if err != nil {
		return
	}
	idx := ed.session.Snapshot().Selected()
	ed.app.good.Fprintf(ed.out, "%d %s %s\n", idx+1, cur.Name, cur.Hex())
}

func (ed *editor) list([]string) error {
	if ed.session.Snapshot().Len() == 0 {
		fmt.Fprintln(ed.out, emptyPaletteMessage)
		return nil
	}
	renderPalette(ed.out, ed.session.Bundles(), ed.preview)
	fmt.Fprintln(ed.out, ed.session.Contrast().String())
	return nil
}

func (ed *editor) selectColour(args []string) error {
	n, err := intArg(args, 0, "N")
	if err != nil {
		return err
	}
	if err := ed.session.Select(n - 1); err != nil {
		return err
	}
	ed.changed()
	return nil
}

func (ed *editor) hue(args []string) error {
	h, err := intArg(args, 0, "H")
	if err != nil {
		return err
	}
	return ed.edited(ed.session.SetHue(h))
}

func (ed *editor) light(args []string) error {
	l, err := intArg(args, 0, "L")
	if err != nil {
		return err
	}
	return ed.edited(ed.session.SetLightness(l))
}

func (ed *editor) hueLight(args []string) error {
	h, err := intArg(args, 0, "H")
	if err != nil {
		return err
	}
	l, err := intArg(args, 1, "L")
	if err != nil {
		return err
	}
	return ed.edited(ed.session.SetHueLightness(h, l))
}

func (ed *editor) wheel(args []string) error {
	x, err := floatArg(args, 0, "X")
	if err != nil {
		return err
	}
	y, err := floatArg(args, 1, "Y")
	if err != nil {
		return err
	}
	return ed.edited(ed.session.SetHueFromWheel(x, y))
}

func (ed *editor) alpha(args []string) error {
	v, err := floatArg(args, 0, "A")
	if err != nil {
		return err
	}
	if v < 0 || v > 1 {
		return fmt.Errorf("alpha must be within [0,1], got %v", v)
	}
	return ed.edited(ed.session.SetAlpha(v))
}

func (ed *editor) hex(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: hex HEX")
	}
	return ed.edited(ed.session.SetHex(args[0]))
}

func (ed *editor) rotate(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: rotate HEX")
	}
	if err := ed.session.RotateTo(args[0]); err != nil {
		return err
	}
	return ed.list(nil)
}

func (ed *editor) add([]string) error {
	ed.session.Append()
	ed.changed()
	return nil
}

func (ed *editor) remove([]string) error {
	if err := ed.session.Delete(); err != nil {
		if errors.Is(err, palette.ErrLastColour) {
			ed.app.warn.Fprintln(ed.out, "A palette needs at least one colour.")
			return nil
		}
		return err
	}
	ed.changed()
	return nil
}

func (ed *editor) roles([]string) error {
	a, ok := ed.session.Roles()
	if !ok {
		fmt.Fprintln(ed.out, emptyPaletteMessage)
		return nil
	}
	renderRoles(ed.out, a, ed.preview)
	return nil
}

func (ed *editor) layout([]string) error {
	a, ok := ed.session.Roles()
	if !ok {
		fmt.Fprintln(ed.out, emptyPaletteMessage)
		return nil
	}
	renderLayout(ed.out, palette.Layout(a), ed.preview)
	return nil
}

func (ed *editor) triad([]string) error {
	renderTriad(ed.out, ed.session.Triad(), ed.preview)
	return nil
}

func (ed *editor) harmony([]string) error {
	renderHarmonies(ed.out, ed.session.Harmonies())
	return nil
}

func (ed *editor) contrast([]string) error {
	fmt.Fprintln(ed.out, ed.session.Contrast().String())
	return nil
}

func (ed *editor) export(args []string) error {
	format := string(palette.TokensCSS)
	if len(args) > 0 {
		format = args[0]
	}
	tf, err := palette.ParseTokenFormat(format)
	if err != nil {
		return err
	}
	content, err := ed.session.Export(tf)
	if err != nil {
		return err
	}
	fmt.Fprintln(ed.out, content)
	return nil
}

func (ed *editor) load(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: load PATH")
	}
	if args[0] == "-" {
		return errors.New("load reads a file; stdin carries the session commands")
	}
	r, err := service.LoadResult(args[0], nil)
	if err != nil {
		return err
	}
	ed.apply(r)
	return nil
}

func (ed *editor) generate(args []string) error {
	r, err := ed.app.client(ed.session).Generate(ed.ctx, ed.serviceRequest(args))
	if err != nil {
		return err
	}
	ed.apply(r)
	return nil
}

func (ed *editor) suggest(args []string) error {
	s, err := ed.app.client(ed.session).Suggest(ed.ctx, ed.serviceRequest(args))
	if err != nil {
		return err
	}
	renderVariants(ed.out, s.Variants(), ed.preview)
	return nil
}

// serviceRequest starts from the request the session was opened with and
// takes an optional sentiment and idea from the command line.
func (ed *editor) serviceRequest(args []string) service.Request {
	req := ed.request
	if len(args) > 0 {
		req.Sentiment = args[0]
	}
	if len(args) > 1 {
		req.Idea = strings.Join(args[1:], " ")
	}
	return req
}

func (ed *editor) help([]string) error {
	names := make([]string, 0, len(editCommands))
	for name := range editCommands {
		names = append(names, name)
	}
	sort.Strings(names)

	table := NewTable([]string{"Command", "Description"})
	for _, name := range names {
		c := editCommands[name]
		table.AddRow([]string{c.usage, c.help})
	}
	fmt.Fprint(ed.out, table.Render())
	return nil
}

// edited reports the outcome of a single-colour edit.
func (ed *editor) edited(err error) error {
	if err != nil {
		return err
	}
	ed.changed()
	return nil
}

func intArg(args []string, i int, name string) (int, error) {
	if len(args) <= i {
		return 0, fmt.Errorf("missing %s", name)
	}
	v, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number, got %q", name, args[i])
	}
	return v, nil
}

func floatArg(args []string, i int, name string) (float64, error) {
	if len(args) <= i {
		return 0, fmt.Errorf("missing %s", name)
	}
	v, err := strconv.ParseFloat(args[i], 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", name, args[i])
	}
	return v, nil
}
