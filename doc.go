// Copyright 2026 The configster Authors
// SPDX-License-Identifier: BSD-3-Clause

/*
Package configster parses line-oriented configuration files made of
"option = value" assignments, where a value may carry a delimiter-separated
attribute list.

The parser is read-only: it produces an ordered list of entries and offers
no write-back or serialization.

# Syntax

A configuration file is Unicode text encoded in UTF-8. Each line holds at
most one entry:

	option = primary_value , attr1 , attr2

The first equals sign ('=') separates the option name from its value. The
attribute delimiter (chosen by the caller, commonly ',') separates the
primary value from the attributes and the attributes from each other. A
line without an equals sign is an option with an empty value:

	DelayOff

Whitespace (characters with the Unicode White Space property) at the
beginning or end of lines, around option names, around values, and around
attributes is ignored. Blank lines are ignored. If the first non-whitespace
character of a line is a hash ('#'), the line is a comment. There is no
quoting or escaping of the delimiter or the equals sign, no sections, and
no multi-line values.

Option names must not contain whitespace. A line such as

	Option  /home/foo

is not dropped: it produces an entry named "InvalidOption_on_Line<N>" (N
being the 1-based line number) with an empty value, so callers can notice
malformed lines without the whole parse failing.

# Repeated names

Multiple entries may have the same option name. All of them appear in the
parsed list; when retrieving in a single-value context (like Options.Get),
only the last value is used.
*/
package configster
