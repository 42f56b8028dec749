package timetable

import (
	"vttimetable/lib/restyutil"
	"vttimetable/lib/telemetry"
)

var tracer = telemetry.Tracer("vttimetable.lib.scrapers.timetable")

var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput routes full request/response dumps from
// clients created after this call to the given output.
func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyInstrumentOutput = out
}
