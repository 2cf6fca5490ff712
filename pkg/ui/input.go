package ui

import (
	"fmt"

	"github.com/loomui-dev/loom/pkg/vdom"
)

// SelectOption is one choice in a select input.
type SelectOption struct {
	Label string
	Value string
}

var inputSpec = ComponentSpec{
	Name: "input",
	Attrs: []AttrSpec{
		{Name: "name", Type: TypeString, Required: true},
		{Name: "id", Type: TypeString, Overridable: true,
			Default: Fn(func(a Assigns) any { return "input-" + a.String("name") })},
		{Name: "type", Type: TypeString, Overridable: true, Default: Lit("text"),
			Values: []any{
				"checkbox", "color", "date", "datetime-local", "email", "file",
				"hidden", "month", "number", "password", "range", "search",
				"select", "tel", "text", "textarea", "time", "url", "week",
			}},
		{Name: "label", Type: TypeString},
		{Name: "value", Type: TypeAny},
		{Name: "checked", Type: TypeBool, Default: Lit(false)},
		{Name: "errors", Type: TypeList, Default: Lit([]string{})},
		{Name: "prompt", Type: TypeString},
		{Name: "options", Type: TypeList},
		{Name: "multiple", Type: TypeBool, Default: Lit(false)},
		{Name: "rows", Type: TypeInt, Overridable: true, Default: Lit(4)},
		{Name: "class", Type: TypeClass, Overridable: true,
			Default: Fn(func(a Assigns) any {
				invalid := len(a.Strings("errors")) > 0
				return []any{
					"mt-2 block w-full rounded-lg text-zinc-900 focus:ring-0 sm:text-sm sm:leading-6",
					ClassIf(!invalid, "border-zinc-300 focus:border-zinc-400"),
					ClassIf(invalid, "border-rose-400 focus:border-rose-400"),
				}
			})},
	},
}

// FormInput renders a labeled form input with its validation errors. The
// declared type picks the branch: checkbox, select, and textarea render
// their own markup; every other type shares the plain <input> branch.
func (k *Kit) FormInput(assigns Assigns) (*vdom.VNode, error) {
	a, err := k.resolve(inputSpec, assigns)
	if err != nil {
		return nil, err
	}

	switch a.String("type") {
	case "checkbox":
		return k.checkboxInput(a), nil
	case "select":
		return k.selectInput(a)
	case "textarea":
		return k.textareaInput(a), nil
	default:
		return k.plainInput(a), nil
	}
}

func (k *Kit) plainInput(a Assigns) *vdom.VNode {
	errors := a.Strings("errors")

	return vdom.Div(
		k.inputLabel(a),
		vdom.Input(
			vdom.Type(a.String("type")),
			vdom.Name(a.String("name")),
			vdom.ID(a.String("id")),
			vdom.AttrIf(a.Has("value"), vdom.Value(valueString(a["value"]))),
			vdom.Class(a.String("class")),
			vdom.Attrs(a.Rest()),
		),
		k.fieldErrors(errors),
	)
}

func (k *Kit) checkboxInput(a Assigns) *vdom.VNode {
	return vdom.Div(
		vdom.Label(
			vdom.For(a.String("id")),
			vdom.Class("flex items-center gap-4 text-sm leading-6 text-zinc-600"),
			// Unchecked boxes submit nothing; the hidden false pairs with
			// the checkbox so the field always posts a value.
			vdom.Input(
				vdom.Type("hidden"),
				vdom.Name(a.String("name")),
				vdom.Value("false"),
			),
			vdom.Input(
				vdom.Type("checkbox"),
				vdom.Name(a.String("name")),
				vdom.ID(a.String("id")),
				vdom.Value("true"),
				vdom.AttrIf(a.Bool("checked"), vdom.Checked()),
				vdom.Class("rounded border-zinc-300 text-zinc-900 focus:ring-0"),
				vdom.Attrs(a.Rest()),
			),
			vdom.Text(a.String("label")),
		),
		k.fieldErrors(a.Strings("errors")),
	)
}

func (k *Kit) selectInput(a Assigns) (*vdom.VNode, error) {
	options, err := selectOptions(a["options"])
	if err != nil {
		return nil, &ValueError{Component: inputSpec.Name, Attr: "options",
			Value: a["options"], Reason: err.Error()}
	}

	selected := valueString(a["value"])
	opts := make([]*vdom.VNode, 0, len(options)+1)
	if prompt := a.String("prompt"); prompt != "" {
		// The prompt keeps an explicit value="" so choosing it submits
		// the empty string, not the prompt text.
		opts = append(opts, vdom.Option(vdom.ValueEmpty(), vdom.Text(prompt)))
	}
	for _, opt := range options {
		opts = append(opts, vdom.Option(
			vdom.Value(opt.Value),
			vdom.AttrIf(selected != "" && opt.Value == selected, vdom.Selected()),
			vdom.Text(opt.Label),
		))
	}

	return vdom.Div(
		k.inputLabel(a),
		vdom.Select(
			vdom.Name(a.String("name")),
			vdom.ID(a.String("id")),
			vdom.AttrIf(a.Bool("multiple"), vdom.Multiple()),
			vdom.Class(MergeClasses(a.String("class"), "bg-white shadow-sm")),
			vdom.Attrs(a.Rest()),
			opts,
		),
		k.fieldErrors(a.Strings("errors")),
	), nil
}

func (k *Kit) textareaInput(a Assigns) *vdom.VNode {
	return vdom.Div(
		k.inputLabel(a),
		vdom.Textarea(
			vdom.Name(a.String("name")),
			vdom.ID(a.String("id")),
			vdom.Rows(a.Int("rows")),
			vdom.Class(MergeClasses(a.String("class"), "min-h-[6rem]")),
			vdom.Attrs(a.Rest()),
			vdom.Text(valueString(a["value"])),
		),
		k.fieldErrors(a.Strings("errors")),
	)
}

// inputLabel renders the field label, or nothing when no label text is set.
func (k *Kit) inputLabel(a Assigns) *vdom.VNode {
	text := a.String("label")
	if text == "" {
		return nil
	}
	node, err := k.Label(Assigns{
		"for":         a.String("id"),
		"inner_block": []Slot{TextSlot(text)},
	})
	if err != nil {
		return nil
	}
	return node
}

// valueString renders a field value attribute.
func valueString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}

// selectOptions normalizes the options attribute: []SelectOption keeps
// distinct labels and values, []string uses each entry for both.
func selectOptions(v any) ([]SelectOption, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case []SelectOption:
		return x, nil
	case []string:
		out := make([]SelectOption, len(x))
		for i, s := range x {
			out[i] = SelectOption{Label: s, Value: s}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected []ui.SelectOption or []string, got %T", v)
	}
}
