// Package domain contains the core domain types used by the code scanner:
// scan states, authorization statuses, symbologies, detections and journaled
// captures. These types are free of infrastructure concerns so they can be
// shared between the controller, the storage layer and the transports.
package domain
