// Package funnel aggregates per-campaign contact counts for the dashboard
// funnel card.
//
// Classification happens in SQL so a request costs at most two aggregate
// queries; the service layer owns the fallback policy for campaigns whose
// contact rows predate the current lifecycle columns. The package depends on
// the Repository interface defined here and never imports from the api layer.
//
// The repository implementation lives in repository/postgres/.
package funnel
