package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"linkedlist-backend/internal/client"
	"linkedlist-backend/internal/database/models"
	"linkedlist-backend/internal/state"

	"github.com/docopt/docopt-go"
)

const LinkCtlVersion = "0.1.0"

const usage = `LinkedList control.

Usage:
    linkctl links [--label=<id>...] [options]
    linkctl show <id> [options]
    linkctl add <url> <title> [--description=<text>] [--permanent] [--public] [options]
    linkctl rm <id> [options]
    linkctl note <link-id> <content> [options]
    linkctl labels [options]
    linkctl label-add <name> [options]
    linkctl tag <link-id> <label-id> [options]
    linkctl untag <link-id> <label-id> [options]
    linkctl me [options]
    linkctl -h | --help
    linkctl --version

Options:
    -h --help               Show this screen.
    --version               Show version.
    --api=<url>             API base URL [default: http://localhost:5173].
    --session=<token>       Session token; defaults to $LINKCTL_SESSION.
    --timeout=<seconds>     Request timeout in seconds [default: 30].
    --label=<id>            Only show links carrying this label. Repeatable.
    --description=<text>    Link description.
    --permanent             Mark the link permanent.
    --public                Mark the link public.
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "linkctl:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, argv []string, out io.Writer) error {
	printed := false
	parser := &docopt.Parser{
		HelpHandler: func(err error, output string) {
			if err == nil {
				fmt.Fprintln(out, output)
				printed = true
			}
		},
	}
	opts, err := parser.ParseArgs(usage, argv, LinkCtlVersion)
	if err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	// --help and --version print and stop
	if printed {
		return nil
	}

	api, err := newClient(opts)
	if err != nil {
		return err
	}

	switch {
	case flag(opts, "links"):
		labelIDs, _ := opts["--label"].([]string)
		return listLinks(ctx, api, labelIDs, out)
	case flag(opts, "show"):
		id, _ := opts.String("<id>")
		return showLink(ctx, api, id, out)
	case flag(opts, "add"):
		return addLink(ctx, api, opts, out)
	case flag(opts, "rm"):
		id, _ := opts.String("<id>")
		if err := api.DeleteLink(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(out, "deleted %s\n", id)
		return nil
	case flag(opts, "note"):
		return addNote(ctx, api, opts, out)
	case flag(opts, "labels"):
		return listLabels(ctx, api, out)
	case flag(opts, "label-add"):
		name, _ := opts.String("<name>")
		labels := state.NewLabelsStore(api)
		label, err := labels.Add(ctx, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\t%s\n", label.ID, label.Name)
		return nil
	case flag(opts, "tag"), flag(opts, "untag"):
		return changeLabel(ctx, api, opts, out)
	case flag(opts, "me"):
		return whoAmI(ctx, api, out)
	}
	return fmt.Errorf("no command given")
}

func flag(opts docopt.Opts, name string) bool {
	v, _ := opts.Bool(name)
	return v
}

func newClient(opts docopt.Opts) (*client.Client, error) {
	apiURL, _ := opts.String("--api")
	timeout, err := opts.Int("--timeout")
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("--timeout must be a positive number of seconds")
	}

	api, err := client.New(apiURL, client.WithTimeout(time.Duration(timeout)*time.Second))
	if err != nil {
		return nil, err
	}

	token, _ := opts.String("--session")
	if token == "" {
		token = os.Getenv("LINKCTL_SESSION")
	}
	if token != "" {
		api.SetSessionToken(token)
	}
	return api, nil
}

func listLinks(ctx context.Context, api state.API, labelIDs []string, out io.Writer) error {
	links := state.NewLinksStore(api)
	selected := state.NewSelectedLabels()
	filtered := state.NewFilteredLinksStore(ctx, api, links, selected)
	defer filtered.Close()

	if err := links.Refresh(ctx); err != nil {
		return err
	}
	for _, id := range labelIDs {
		selected.Toggle(id)
	}
	if len(labelIDs) > 0 {
		// the stores fall back to every link on error; a CLI should not
		if err := filtered.Refresh(ctx); err != nil {
			return err
		}
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tURL\tFLAGS")
	for _, l := range filtered.Get() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", l.ID, l.Title, l.URL, linkFlags(l))
	}
	return w.Flush()
}

func linkFlags(l models.Link) string {
	var flags []string
	if l.IsPermanent {
		flags = append(flags, "permanent")
	}
	if l.IsPublic {
		flags = append(flags, "public")
	}
	return strings.Join(flags, ",")
}

func showLink(ctx context.Context, api state.API, id string, out io.Writer) error {
	active := state.NewActiveLinkStore(api)
	link, err := active.Load(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s\n%s\n", link.Title, link.URL)
	if link.Description != nil {
		fmt.Fprintf(out, "\n%s\n", *link.Description)
	}
	if len(link.Labels) > 0 {
		names := make([]string, 0, len(link.Labels))
		for _, l := range link.Labels {
			names = append(names, l.Name)
		}
		fmt.Fprintf(out, "\nlabels: %s\n", strings.Join(names, ", "))
	}
	for _, n := range link.Notes {
		marker := "-"
		if n.IsPublished {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s\n", marker, n.Content)
	}
	return nil
}

func addLink(ctx context.Context, api state.API, opts docopt.Opts, out io.Writer) error {
	in := models.LinkInput{}
	in.URL, _ = opts.String("<url>")
	in.Title, _ = opts.String("<title>")
	if desc, _ := opts.String("--description"); desc != "" {
		in.Description = &desc
	}
	in.IsPermanent = flag(opts, "--permanent")
	in.IsPublic = flag(opts, "--public")

	link, err := state.NewLinksStore(api).Add(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s\t%s\n", link.ID, link.URL)
	return nil
}

func addNote(ctx context.Context, api state.API, opts docopt.Opts, out io.Writer) error {
	linkID, _ := opts.String("<link-id>")
	content, _ := opts.String("<content>")

	active := state.NewActiveLinkStore(api)
	if _, err := active.Load(ctx, linkID); err != nil {
		return err
	}
	note, err := active.AddNote(ctx, content)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s\n", note.ID)
	return nil
}

func listLabels(ctx context.Context, api state.API, out io.Writer) error {
	labels := state.NewLabelsStore(api)
	if err := labels.Refresh(ctx); err != nil {
		return err
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	for _, l := range labels.Get() {
		fmt.Fprintf(w, "%s\t%s\n", l.ID, l.Name)
	}
	return w.Flush()
}

func changeLabel(ctx context.Context, api state.API, opts docopt.Opts, out io.Writer) error {
	linkID, _ := opts.String("<link-id>")
	labelID, _ := opts.String("<label-id>")

	active := state.NewActiveLinkStore(api)
	if _, err := active.Load(ctx, linkID); err != nil {
		return err
	}
	if flag(opts, "tag") {
		if err := active.AddLabel(ctx, labelID); err != nil {
			return err
		}
	} else if err := active.RemoveLabel(ctx, labelID); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s now has %d label(s)\n", linkID, len(active.Get().Labels))
	return nil
}

func whoAmI(ctx context.Context, api state.API, out io.Writer) error {
	authStore := state.NewAuthStore(api)
	if err := authStore.Refresh(ctx); err != nil {
		return err
	}
	st := authStore.Get()
	if !st.Authenticated {
		fmt.Fprintln(out, "anonymous")
		return nil
	}
	fmt.Fprintf(out, "%s <%s>\n", st.User.ID, st.User.Email)
	return nil
}
