package ui

import "github.com/loomui-dev/loom/pkg/vdom"

var tableSpec = ComponentSpec{
	Name: "table",
	Attrs: []AttrSpec{
		{Name: "id", Type: TypeString, Required: true},
		{Name: "rows", Type: TypeList, Required: true},
		{Name: "row_id", Type: TypeFunc},
		{Name: "row_click", Type: TypeFunc},
		{Name: "class", Type: TypeClass, Overridable: true,
			Default: Lit("w-[40rem] mt-11 sm:w-full")},
	},
	Slots: []SlotSpec{
		{Name: "col", Required: true},
		{Name: "action"},
	},
}

// DataTable renders rows into a table described by col slots. Each col slot
// carries a "label" attribute and a row-scoped body; action slots render a
// trailing cell per row. Optional row_id and row_click callbacks
// (func(row any) string) produce per-row element ids and click markers for
// the host client.
func (k *Kit) DataTable(assigns Assigns) (*vdom.VNode, error) {
	a, err := k.resolve(tableSpec, assigns)
	if err != nil {
		return nil, err
	}

	rows, ok := a["rows"].([]any)
	if !ok {
		return nil, &ValueError{Component: tableSpec.Name, Attr: "rows",
			Value: a["rows"], Reason: "expected []any"}
	}
	rowID, _ := a["row_id"].(func(row any) string)
	rowClick, _ := a["row_click"].(func(row any) string)

	cols := a.Slots("col")
	actions := a.Slots("action")

	headCells := make([]*vdom.VNode, 0, len(cols)+1)
	for _, col := range cols {
		headCells = append(headCells, vdom.Th(
			vdom.Class("p-0 pb-4 pr-6 font-normal"),
			vdom.Text(col.String("label")),
		))
	}
	if len(actions) > 0 {
		headCells = append(headCells, vdom.Th(
			vdom.Class("relative p-0 pb-4"),
			vdom.Span(vdom.Class("sr-only"), vdom.Text("Actions")),
		))
	}

	bodyRows := make([]*vdom.VNode, 0, len(rows))
	for _, row := range rows {
		var clickAttr vdom.Attr
		if rowClick != nil {
			clickAttr = vdom.Data("click", rowClick(row))
		}
		cells := make([]*vdom.VNode, 0, len(cols)+1)
		for i, col := range cols {
			cells = append(cells, vdom.Td(
				clickAttr,
				vdom.Class(MergeClasses(
					"relative p-0",
					ClassIf(rowClick != nil, "hover:cursor-pointer"),
					ClassIf(i == 0, "font-semibold text-zinc-900"),
				)),
				vdom.Div(
					vdom.Class("block py-4 pr-6"),
					col.RenderWith(row),
				),
			))
		}
		if len(actions) > 0 {
			actionNodes := make([]*vdom.VNode, 0, len(actions))
			for _, action := range actions {
				actionNodes = append(actionNodes, action.RenderWith(row))
			}
			cells = append(cells, vdom.Td(
				vdom.Class("relative w-14 p-0 py-4 text-right text-sm font-medium"),
				actionNodes,
			))
		}

		tr := vdom.Tr(
			vdom.Class("group hover:bg-zinc-50"),
			cells,
		)
		if rowID != nil {
			tr.Props["id"] = rowID(row)
		}
		bodyRows = append(bodyRows, tr)
	}

	return vdom.Div(
		vdom.Class("overflow-y-auto px-4 sm:overflow-visible sm:px-0"),
		vdom.Table(
			vdom.ID(a.String("id")),
			vdom.Class(a.String("class")),
			vdom.Attrs(a.Rest()),
			vdom.Thead(
				vdom.Class("text-sm text-left leading-6 text-zinc-500"),
				vdom.Tr(headCells),
			),
			vdom.Tbody(
				vdom.ID(a.String("id")+"-body"),
				vdom.Class("relative divide-y divide-zinc-100 border-t border-zinc-200 text-sm leading-6 text-zinc-700"),
				bodyRows,
			),
		),
	), nil
}
