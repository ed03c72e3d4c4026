package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hxo-dev/hxo/internal/errors"
	"github.com/hxo-dev/hxo/internal/treejson"
	"github.com/hxo-dev/hxo/pkg/i18n"
	"github.com/hxo-dev/hxo/pkg/reactive"
	"github.com/hxo-dev/hxo/pkg/render"
	"github.com/hxo-dev/hxo/pkg/vdom"
)

// translationPrefix marks text that is a message key, e.g. "@nav.home".
const translationPrefix = "@"

func renderCmd(a *app) *cobra.Command {
	var (
		pretty   bool
		hash     bool
		messages string
		locale   string
	)

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a JSON tree file to HTML",
		Long: `Render a JSON tree file to HTML on stdout.

A node is a string (text), {"text": "..."}, {"fragment": [...]} or
{"tag": "div", "props": {...}, "children": "text" | [...]}.

With --messages, text starting with "@" is a message key translated in
the configured locale (--locale, HXO_LOCALE or i18n.locale).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := treejson.ReadFile(args[0])
			if err != nil {
				return err
			}

			if messages != "" {
				if locale == "" {
					locale = a.cfg.I18n.Locale
				}
				if err := a.translate(tree, messages, locale); err != nil {
					return err
				}
			}

			if hash {
				sum, err := render.Fingerprint(tree)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%016x\n", sum)
				return nil
			}

			r := render.NewRenderer(render.Config{
				Pretty: pretty || a.cfg.Render.Pretty,
				Indent: a.cfg.Render.Indent,
			})
			html, err := r.RenderToString(tree)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), html)
			if !strings.HasSuffix(html, "\n") {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Indent block elements")
	cmd.Flags().BoolVar(&hash, "hash", false, "Print the xxhash fingerprint of the HTML instead")
	cmd.Flags().StringVarP(&messages, "messages", "m", "", "JSON file of messages by locale")
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "Locale for --messages")
	return cmd
}

func (a *app) translate(tree *vdom.VNode, path, locale string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Newf(errors.CategoryCLI, "read messages").Wrap(err)
	}
	var catalogs i18n.Data
	if err := json.Unmarshal(data, &catalogs); err != nil {
		return errors.New(errors.CodeBadArguments).
			WithDetail(path + " must map locales to message objects").
			Wrap(err)
	}

	rt := reactive.NewRuntime(reactive.WithLogger(a.logger))
	tr, err := i18n.New(rt, catalogs, i18n.WithCacheSize(a.cfg.I18n.CacheSize))
	if err != nil {
		return err
	}
	tr.SetLocale(locale)
	translateTree(tree, tr)
	return nil
}

// translateTree replaces message keys in text with their translation.
func translateTree(v *vdom.VNode, tr *i18n.Translator) {
	if v == nil {
		return
	}
	if v.Kind == vdom.KindText || v.Shape == vdom.ChildrenText {
		if key, ok := strings.CutPrefix(v.Text, translationPrefix); ok {
			v.Text = tr.T(key)
		}
	}
	for _, c := range v.Children {
		translateTree(c, tr)
	}
}
