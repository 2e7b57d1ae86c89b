// README: Trip plan document produced by the model, plus the validator that vets it.
package tripplan

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// Text accepts a JSON string or any other scalar. The model emits fields like
// rating and entryFee as either "4.5" or 4.5; non-strings keep their literal form.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, b); err != nil {
		return err
	}
	*t = Text(buf.String())
	return nil
}

// field binds a JSON member name to the typed struct field it decodes into.
type field struct {
	key string
	ptr any
}

// members keeps every JSON member of a decoded object. Members without a typed
// field, or whose value does not fit the field's type, are written back
// unchanged on encode. A value that is not an object is kept verbatim.
type members struct {
	raw      map[string]json.RawMessage
	decoded  map[string]bool
	verbatim json.RawMessage
}

func isObject(b []byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) > 0 && b[0] == '{'
}

func (m *members) decode(b []byte, fields []field) error {
	*m = members{}
	if !isObject(b) {
		m.verbatim = append(json.RawMessage(nil), bytes.TrimSpace(b)...)
		return nil
	}
	if err := json.Unmarshal(b, &m.raw); err != nil {
		return err
	}
	m.decoded = make(map[string]bool, len(fields))
	for _, f := range fields {
		raw, ok := m.raw[f.key]
		if !ok {
			continue
		}
		dst := reflect.ValueOf(f.ptr).Elem()
		v := reflect.New(dst.Type())
		if err := json.Unmarshal(raw, v.Interface()); err != nil {
			continue
		}
		dst.Set(v.Elem())
		m.decoded[f.key] = true
	}
	return nil
}

// encode writes the original members, overlaid with every typed field that
// was decoded or has since been set.
func (m members) encode(fields []field) ([]byte, error) {
	if m.verbatim != nil {
		return m.verbatim, nil
	}
	out := make(map[string]any, len(m.raw)+len(fields))
	for k, v := range m.raw {
		out[k] = v
	}
	for _, f := range fields {
		v := reflect.ValueOf(f.ptr).Elem()
		if m.decoded[f.key] || !v.IsZero() {
			out[f.key] = v.Interface()
		}
	}
	return json.Marshal(out)
}

// object reports whether the value came from a JSON object or was built in code.
func (m members) object() bool { return m.verbatim == nil }

// Plan is the trip document. Hotels and Itinerary are guaranteed non-empty
// on any plan returned inside a valid Outcome. Members the model adds beyond
// the typed fields are kept and stored with the trip.
type Plan struct {
	TripSummary        string
	BudgetBreakdown    map[string]Text
	BestTimeToVisit    Text
	TransportationTips Text
	LocalCuisine       []Text
	SafetyTips         []Text
	Hotels             []Hotel
	Itinerary          []Day
	AdditionalInfo     *AdditionalInfo
	Destination        *Destination

	members
}

func (p *Plan) fields() []field {
	return []field{
		{"tripSummary", &p.TripSummary},
		{"budgetBreakdown", &p.BudgetBreakdown},
		{"bestTimeToVisit", &p.BestTimeToVisit},
		{"transportationTips", &p.TransportationTips},
		{"localCuisine", &p.LocalCuisine},
		{"safetyTips", &p.SafetyTips},
		{"hotels", &p.Hotels},
		{"itinerary", &p.Itinerary},
		{"additionalInfo", &p.AdditionalInfo},
		{"destination", &p.Destination},
	}
}

// UnmarshalJSON requires an object; any member of an unexpected shape reads as absent.
func (p *Plan) UnmarshalJSON(b []byte) error {
	if !isObject(b) {
		return errNotObject
	}
	return p.members.decode(b, p.fields())
}

func (p Plan) MarshalJSON() ([]byte, error) { return p.members.encode(p.fields()) }

// Hotel is one accommodation suggestion.
type Hotel struct {
	Name        string
	Description string
	Rating      Text
	PriceRange  Text
	Address     string
	ImageURL    string
	Amenities   []Text

	members
}

func (h *Hotel) fields() []field {
	return []field{
		{"name", &h.Name},
		{"description", &h.Description},
		{"rating", &h.Rating},
		{"priceRange", &h.PriceRange},
		{"address", &h.Address},
		{"imageUrl", &h.ImageURL},
		{"amenities", &h.Amenities},
	}
}

func (h *Hotel) UnmarshalJSON(b []byte) error { return h.members.decode(b, h.fields()) }
func (h Hotel) MarshalJSON() ([]byte, error) { return h.members.encode(h.fields()) }

// Day is one itinerary day.
type Day struct {
	Day        Text
	Activities []Activity

	members
}

func (d *Day) fields() []field {
	return []field{
		{"day", &d.Day},
		{"activities", &d.Activities},
	}
}

func (d *Day) UnmarshalJSON(b []byte) error { return d.members.decode(b, d.fields()) }
func (d Day) MarshalJSON() ([]byte, error) { return d.members.encode(d.fields()) }

// Activity is a single stop within a day.
type Activity struct {
	Name         string
	Description  string
	Time         Text
	Duration     Text
	EntryFee     Text
	ImageURL     string
	Tags         []Text
	NearbyPlaces []Text

	members
}

func (a *Activity) fields() []field {
	return []field{
		{"name", &a.Name},
		{"description", &a.Description},
		{"time", &a.Time},
		{"duration", &a.Duration},
		{"entryFee", &a.EntryFee},
		{"imageUrl", &a.ImageURL},
		{"tags", &a.Tags},
		{"nearbyPlaces", &a.NearbyPlaces},
	}
}

func (a *Activity) UnmarshalJSON(b []byte) error { return a.members.decode(b, a.fields()) }
func (a Activity) MarshalJSON() ([]byte, error) { return a.members.encode(a.fields()) }

// AdditionalInfo holds the optional travel notes section. Budget is read as
// a fallback when the plan has no top-level budget breakdown.
type AdditionalInfo struct {
	TravelTips     []Text
	LocalEtiquette []Text
	Currency       *Currency
	Seasons        map[string]Text
	Budget         map[string]Text

	members
}

func (info *AdditionalInfo) fields() []field {
	return []field{
		{"travelTips", &info.TravelTips},
		{"localEtiquette", &info.LocalEtiquette},
		{"currency", &info.Currency},
		{"seasons", &info.Seasons},
		{"budgetBreakdown", &info.Budget},
	}
}

func (info *AdditionalInfo) UnmarshalJSON(b []byte) error { return info.members.decode(b, info.fields()) }
func (info AdditionalInfo) MarshalJSON() ([]byte, error) { return info.members.encode(info.fields()) }

// Currency describes the local currency.
type Currency struct {
	Name         Text
	Symbol       Text
	ExchangeRate Text
	Tips         Text

	members
}

func (c *Currency) fields() []field {
	return []field{
		{"name", &c.Name},
		{"symbol", &c.Symbol},
		{"exchangeRate", &c.ExchangeRate},
		{"tips", &c.Tips},
	}
}

func (c *Currency) UnmarshalJSON(b []byte) error { return c.members.decode(b, c.fields()) }
func (c Currency) MarshalJSON() ([]byte, error) { return c.members.encode(c.fields()) }

// Destination is attached by the validator. Coordinates holds the caller's
// place identifier and is null when none was supplied.
type Destination struct {
	Name        string  `json:"name"`
	Coordinates *string `json:"coordinates"`
	Type        string  `json:"type"`
}
