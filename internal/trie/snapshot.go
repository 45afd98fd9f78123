package trie

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
)

// Snapshot format, one record per node in pre-order:
// [flags: 1 byte][word length: uvarint][word][num children: uvarint]
// followed, for each child in token byte order, by
// [token length: uvarint][token][child record...]
// - flags: 0 = internal node, 1 = terminal node
//
// The encoding depends only on the trie's contents, never on map iteration
// order, so two tries built from the same dictionary marshal identically.
// It is only used for fingerprinting.

const (
	nodeTypeInternal = iota
	nodeTypeTerminal
)

// MarshalBinary implements encoding.BinaryMarshaler.
func (t *Trie) MarshalBinary() ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := writeNode(t.root, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Fingerprint returns the hex SHA-256 of the trie snapshot.
func (t *Trie) Fingerprint() (string, error) {
	data, err := t.MarshalBinary()
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// writeNode recursively serializes a node and its children
func writeNode(node *Node, w io.Writer) error {
	var scratch [binary.MaxVarintLen64]byte

	nodeType := byte(nodeTypeInternal)
	if node.terminal {
		nodeType = nodeTypeTerminal
	}
	if _, err := w.Write([]byte{nodeType}); err != nil {
		return fmt.Errorf("failed to write node type: %w", err)
	}
	if err := writeString(w, scratch[:], node.word); err != nil {
		return fmt.Errorf("failed to write word: %w", err)
	}

	tokens := node.sortedTokens()
	n := binary.PutUvarint(scratch[:], uint64(len(tokens)))
	if _, err := w.Write(scratch[:n]); err != nil {
		return fmt.Errorf("failed to write child count: %w", err)
	}

	for _, tok := range tokens {
		if err := writeString(w, scratch[:], string(tok)); err != nil {
			return fmt.Errorf("failed to write child token: %w", err)
		}
		if err := writeNode(node.children[tok], w); err != nil {
			return fmt.Errorf("failed to serialize child node: %w", err)
		}
	}
	return nil
}

func writeString(w io.Writer, scratch []byte, s string) error {
	n := binary.PutUvarint(scratch, uint64(len(s)))
	if _, err := w.Write(scratch[:n]); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}
