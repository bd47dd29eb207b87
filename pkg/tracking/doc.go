// Package tracking accepts analytics beacons sent by the landing pages and
// fans them out to in-process subscribers.
//
// The pages report WhatsApp clicks, property interest, virtual pageviews,
// load timings, long touches, orientation and network changes. Events are
// validated, stamped with an id and a timestamp, logged and broadcast.
// Stats is a subscriber that keeps per-name counters.
package tracking
