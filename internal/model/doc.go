package model

// Package model defines domain data structures used across the app: catalog
// categories and the products that belong to them. Structures are plain
// value types designed for direct display in the UI.
