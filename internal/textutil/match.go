// Package textutil is the single home for text matching and normalization.
// Matching is deliberately substring containment, not whole-word matching:
// short tokens can over-match inside unrelated words, and downstream rule
// logic depends on that behavior staying put. Swapping the primitive for
// word-boundary matching only requires touching this package.
package textutil

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

// Contains reports whether needle occurs anywhere in haystack,
// case-insensitively. Every keyword and keypoint check in the engines goes
// through here.
func Contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// ContainsAny reports whether any needle matches.
func ContainsAny(haystack string, needles []string) bool {
	lower := strings.ToLower(haystack)
	for _, n := range needles {
		if strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

// MatchingTerms returns the needles present in haystack, in needle order.
func MatchingTerms(haystack string, needles []string) []string {
	lower := strings.ToLower(haystack)
	var matched []string
	for _, n := range needles {
		if strings.Contains(lower, strings.ToLower(n)) {
			matched = append(matched, n)
		}
	}
	return matched
}

// CountTerms returns how many distinct needles are present in haystack.
func CountTerms(haystack string, needles []string) int {
	lower := strings.ToLower(haystack)
	count := 0
	for _, n := range needles {
		if strings.Contains(lower, strings.ToLower(n)) {
			count++
		}
	}
	return count
}

// MatchKeypoints returns the keypoint phrases whose whitespace-split tokens
// occur in the review text. A phrase matches when any single token matches;
// the result preserves catalog order and is always a subsequence of the
// input keypoints.
func MatchKeypoints(reviewText string, keypoints []string) []string {
	reviewLower := strings.ToLower(reviewText)
	var matched []string
	for _, keypoint := range keypoints {
		for _, token := range strings.Fields(strings.ToLower(keypoint)) {
			if strings.Contains(reviewLower, token) {
				matched = append(matched, keypoint)
				break
			}
		}
	}
	return matched
}

var sentenceSplitter = regexp.MustCompile(`[.!?]+`)

// SplitSentences splits on runs of sentence punctuation and trims the parts.
// Empty parts are dropped.
func SplitSentences(text string) []string {
	parts := sentenceSplitter.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// WordCount counts whitespace-separated tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// UniqueWordCount counts distinct lower-cased tokens.
func UniqueWordCount(text string) int {
	seen := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(text)) {
		seen[w] = struct{}{}
	}
	return len(seen)
}

// HasDigit reports whether the text mentions any digit.
func HasDigit(text string) bool {
	return strings.ContainsAny(text, "0123456789")
}

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern          = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// StripLinks keeps the anchor text of markdown links and removes bare URLs.
func StripLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// NormalizeForAnalysis renders any markdown a reviewer pasted in down to
// plain text and strips links, so the sentiment providers see prose only.
func NormalizeForAnalysis(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := strings.Join(strings.Fields(string(output)), " ")
	return strings.TrimSpace(StripLinks(plain))
}
