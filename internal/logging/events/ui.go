package events

import "github.com/atomicstack/kaomoji-popup/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type CopyTracer struct{}

type GeometryTracer struct{}

type RecentsTracer struct{}

var (
	UI       = UITracer{}
	Filter   = FilterTracer{}
	Copy     = CopyTracer{}
	Geometry = GeometryTracer{}
	Recents  = RecentsTracer{}
)

func (UITracer) CategorySelect(key string, index int) {
	logging.Trace("ui.category-select", map[string]interface{}{"key": key, "index": index})
}

func (UITracer) CategoryCycle(key string, reverse bool) {
	logging.Trace("ui.category-cycle", map[string]interface{}{"key": key, "reverse": reverse})
}

func (UITracer) ItemActivate(category, item string) {
	logging.Trace("ui.item-activate", map[string]interface{}{"category": category, "item": item})
}

func (UITracer) Cursor(category string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"category": category, "cursor": cursor})
}

func (UITracer) Close(reason string) {
	logging.Trace("ui.close", map[string]interface{}{"reason": reason})
}

func (FilterTracer) Append(category, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"category": category, "filter": filter})
}

func (FilterTracer) Backspace(category, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"category": category, "filter": filter})
}

func (FilterTracer) Cleared(category string) {
	logging.Trace("filter.clear", map[string]interface{}{"category": category})
}

func (CopyTracer) Attempt(item string) {
	logging.Trace("copy.attempt", map[string]interface{}{"item": item})
}

func (CopyTracer) Fallback(item string, err error) {
	payload := map[string]interface{}{"item": item}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("copy.fallback", payload)
}

func (CopyTracer) Success(item string, mechanism string) {
	logging.Trace("copy.success", map[string]interface{}{"item": item, "mechanism": mechanism})
}

func (CopyTracer) Failure(item string, err error) {
	payload := map[string]interface{}{"item": item}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("copy.failure", payload)
}

func (GeometryTracer) ResizeStart(edge string, width, height int) {
	logging.Trace("geometry.resize-start", map[string]interface{}{
		"edge":   edge,
		"width":  width,
		"height": height,
	})
}

func (GeometryTracer) ResizeEnd(width, height int) {
	logging.Trace("geometry.resize-end", map[string]interface{}{"width": width, "height": height})
}

func (RecentsTracer) Recorded(item string, count, size int) {
	logging.Trace("recents.recorded", map[string]interface{}{
		"item":  item,
		"count": count,
		"size":  size,
	})
}

func (RecentsTracer) Evicted(item string, count int) {
	logging.Trace("recents.evicted", map[string]interface{}{"item": item, "count": count})
}

func (RecentsTracer) Cleared() {
	logging.Trace("recents.cleared", nil)
}
