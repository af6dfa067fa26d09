// Package domain contains the core data types for the trip planner: the
// compiled-in itinerary and area graphs, map geometry, and the user-mutable
// stays, checklist, suggestions and preferences.
// It depends only on google/uuid and is imported by every other internal package.
package domain
