package preview

import (
	"fmt"

	"github.com/loomui-dev/loom/pkg/flash"
	"github.com/loomui-dev/loom/pkg/ui"
	"github.com/loomui-dev/loom/pkg/vdom"
)

// Demo is one gallery entry: a component rendered with sample data.
type Demo struct {
	Name   string
	Title  string
	Render func(k *ui.Kit) (*vdom.VNode, error)
}

type demoPost struct {
	ID    int
	Title string
	Views int
}

var demoPosts = []any{
	demoPost{ID: 1, Title: "Shipping the new editor", Views: 1204},
	demoPost{ID: 2, Title: "Postmortem: cache stampede", Views: 863},
	demoPost{ID: 3, Title: "Why we render on the server", Views: 411},
}

// Demos returns the gallery entries in display order.
func Demos() []Demo {
	return []Demo{
		{
			Name:  "button",
			Title: "Button",
			Render: func(k *ui.Kit) (*vdom.VNode, error) {
				plain, err := k.Button(ui.Assigns{
					"inner_block": []ui.Slot{ui.TextSlot("Save post")},
				})
				if err != nil {
					return nil, err
				}
				link, err := k.Button(ui.Assigns{
					"navigate":    "/posts",
					"inner_block": []ui.Slot{ui.TextSlot("All posts")},
				})
				if err != nil {
					return nil, err
				}
				disabled, err := k.Button(ui.Assigns{
					"disabled":    true,
					"inner_block": []ui.Slot{ui.TextSlot("Unavailable")},
				})
				if err != nil {
					return nil, err
				}
				return vdom.Div(vdom.Class("flex gap-4"), plain, link, disabled), nil
			},
		},
		{
			Name:  "icon",
			Title: "Icon",
			Render: func(k *ui.Kit) (*vdom.VNode, error) {
				names := []string{"hero-x-mark", "hero-x-mark-solid", "hero-x-mark-mini", "hero-arrow-left", "hero-check-circle"}
				nodes := make([]*vdom.VNode, 0, len(names))
				for _, name := range names {
					node, err := k.Icon(ui.Assigns{"name": name})
					if err != nil {
						return nil, err
					}
					nodes = append(nodes, node)
				}
				return vdom.Div(vdom.Class("flex gap-4"), nodes), nil
			},
		},
		{
			Name:  "flash",
			Title: "Flash",
			Render: func(k *ui.Kit) (*vdom.VNode, error) {
				return k.Flash(ui.Assigns{
					"kind":    "info",
					"title":   "Saved",
					"message": "Post created successfully.",
				})
			},
		},
		{
			Name:  "flash_group",
			Title: "Flash group",
			Render: func(k *ui.Kit) (*vdom.VNode, error) {
				return k.FlashGroup(ui.Assigns{"flashes": map[string]string{
					"info": flash.Encode(flash.Envelope{
						Message: "Deploy finished in 41s.",
						Title:   "Build",
						TTL:     5000,
					}),
					"error": "Could not reach the upstream service.",
				}})
			},
		},
		{
			Name:  "alert",
			Title: "Alert",
			Render: func(k *ui.Kit) (*vdom.VNode, error) {
				kinds := []string{"info", "success", "warning", "error"}
				nodes := make([]*vdom.VNode, 0, len(kinds))
				for _, kind := range kinds {
					node, err := k.Alert(ui.Assigns{
						"kind":        kind,
						"title":       "Heads up",
						"inner_block": []ui.Slot{ui.TextSlot("Something worth knowing about the " + kind + " state.")},
					})
					if err != nil {
						return nil, err
					}
					nodes = append(nodes, node)
				}
				return vdom.Div(vdom.Class("space-y-4"), nodes), nil
			},
		},
		{
			Name:  "input",
			Title: "Form input",
			Render: func(k *ui.Kit) (*vdom.VNode, error) {
				text, err := k.FormInput(ui.Assigns{
					"name":  "title",
					"label": "Title",
					"value": "Shipping the new editor",
				})
				if err != nil {
					return nil, err
				}
				invalid, err := k.FormInput(ui.Assigns{
					"name":   "email",
					"label":  "Email",
					"errors": []string{"has invalid format"},
				})
				if err != nil {
					return nil, err
				}
				sel, err := k.FormInput(ui.Assigns{
					"name":   "category",
					"type":   "select",
					"label":  "Category",
					"prompt": "Choose a category",
					"options": []ui.SelectOption{
						{Label: "Engineering", Value: "eng"},
						{Label: "Design", Value: "design"},
					},
				})
				if err != nil {
					return nil, err
				}
				check, err := k.FormInput(ui.Assigns{
					"name":    "published",
					"type":    "checkbox",
					"label":   "Publish immediately",
					"checked": true,
				})
				if err != nil {
					return nil, err
				}
				area, err := k.FormInput(ui.Assigns{
					"name":  "body",
					"type":  "textarea",
					"label": "Body",
					"value": "Write something...",
				})
				if err != nil {
					return nil, err
				}
				return vdom.Div(vdom.Class("space-y-6"), text, invalid, sel, check, area), nil
			},
		},
		{
			Name:  "simple_form",
			Title: "Simple form",
			Render: func(k *ui.Kit) (*vdom.VNode, error) {
				field, err := k.FormInput(ui.Assigns{"name": "title", "label": "Title"})
				if err != nil {
					return nil, err
				}
				submit, err := k.Button(ui.Assigns{
					"type":        "submit",
					"inner_block": []ui.Slot{ui.TextSlot("Save")},
				})
				if err != nil {
					return nil, err
				}
				return k.SimpleForm(ui.Assigns{
					"for":         "post",
					"action":      "/posts",
					"inner_block": []ui.Slot{{Body: func() *vdom.VNode { return field }}},
					"actions":     []ui.Slot{{Body: func() *vdom.VNode { return submit }}},
				})
			},
		},
		{
			Name:  "label",
			Title: "Label",
			Render: func(k *ui.Kit) (*vdom.VNode, error) {
				return k.Label(ui.Assigns{
					"for":         "input-title",
					"inner_block": []ui.Slot{ui.TextSlot("Title")},
				})
			},
		},
		{
			Name:  "error",
			Title: "Field error",
			Render: func(k *ui.Kit) (*vdom.VNode, error) {
				return k.FieldError(ui.Assigns{"message": "can't be blank"})
			},
		},
		{
			Name:  "header",
			Title: "Page header",
			Render: func(k *ui.Kit) (*vdom.VNode, error) {
				action, err := k.Button(ui.Assigns{
					"navigate":    "/posts/new",
					"inner_block": []ui.Slot{ui.TextSlot("New post")},
				})
				if err != nil {
					return nil, err
				}
				return k.PageHeader(ui.Assigns{
					"title":    []ui.Slot{ui.TextSlot("Posts")},
					"subtitle": []ui.Slot{ui.TextSlot("Everything published this quarter.")},
					"actions":  []ui.Slot{{Body: func() *vdom.VNode { return action }}},
				})
			},
		},
		{
			Name:  "table",
			Title: "Data table",
			Render: func(k *ui.Kit) (*vdom.VNode, error) {
				return k.DataTable(ui.Assigns{
					"id":   "posts",
					"rows": demoPosts,
					"row_id": func(row any) string {
						return fmt.Sprintf("post-%d", row.(demoPost).ID)
					},
					"col": []ui.Slot{
						{Attrs: map[string]any{"label": "Title"}, Body: func(row any) *vdom.VNode {
							return vdom.Text(row.(demoPost).Title)
						}},
						{Attrs: map[string]any{"label": "Views"}, Body: func(row any) *vdom.VNode {
							return vdom.Textf("%d", row.(demoPost).Views)
						}},
					},
					"action": []ui.Slot{
						{Body: func(row any) *vdom.VNode {
							return vdom.A(
								vdom.Href(fmt.Sprintf("/posts/%d/edit", row.(demoPost).ID)),
								vdom.Text("Edit"),
							)
						}},
					},
				})
			},
		},
		{
			Name:  "list",
			Title: "Data list",
			Render: func(k *ui.Kit) (*vdom.VNode, error) {
				return k.DataList(ui.Assigns{
					"item": []ui.Slot{
						{Attrs: map[string]any{"title": "Title"}, Body: func() *vdom.VNode {
							return vdom.Text("Shipping the new editor")
						}},
						{Attrs: map[string]any{"title": "Views"}, Body: func() *vdom.VNode {
							return vdom.Text("1204")
						}},
						{Attrs: map[string]any{"title": "Status"}, Body: func() *vdom.VNode {
							return vdom.Text("Published")
						}},
					},
				})
			},
		},
		{
			Name:  "modal",
			Title: "Modal",
			Render: func(k *ui.Kit) (*vdom.VNode, error) {
				return k.Modal(ui.Assigns{
					"id":   "confirm-modal",
					"show": true,
					"inner_block": []ui.Slot{ui.TextSlot("Deleting a post cannot be undone. Continue?")},
				})
			},
		},
		{
			Name:  "back_link",
			Title: "Back link",
			Render: func(k *ui.Kit) (*vdom.VNode, error) {
				return k.BackLink(ui.Assigns{
					"navigate":    "/posts",
					"inner_block": []ui.Slot{ui.TextSlot("Back to posts")},
				})
			},
		},
	}
}

// FindDemo returns the named demo.
func FindDemo(name string) (Demo, bool) {
	for _, d := range Demos() {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}
