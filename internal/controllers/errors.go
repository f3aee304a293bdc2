package controllers

import "errors"

var (
	ErrMissingElement   = errors.New("product element not found")
	ErrBadNumber        = errors.New("not a number")
	ErrCategoryNotFound = errors.New("category link not found")
	ErrPagerLimit       = errors.New("load more control still present after click limit")
	ErrPagerStalled     = errors.New("load more click did not load products")
	ErrRunInProgress    = errors.New("a scrape is already running")
)
