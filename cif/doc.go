/*Package cif reads Crystallographic Information Files (CIF 1.1).

The format is plain line-oriented text: a file holds one or more data
blocks, each a sequence of scalar tag-value pairs and loop_ tables.
This package parses that structure as-is (Read, Block, Loop) and also
builds xtal.Structure values from the conventional crystallographic
tags (StructureRead), expanding the symmetry-operation loop so the
returned structure holds the full cell contents.

Files compressed with gzip (.gz) or zstandard (.zst) are read
transparently. Writing CIF files is out of scope for this package.*/
package cif
