// Package catalog models the sellable inventory: books and stationery.
// The order workflow only reads from it; catalog maintenance happens
// elsewhere and items are treated as externally owned records.
package catalog
