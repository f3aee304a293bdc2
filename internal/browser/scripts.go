package browser

import (
	"bytes"
	"ecommerce-category-scraper/internal/config"
	"encoding/json"
	"fmt"
	"strings"
)

type linkTarget struct {
	Index    int    `json:"index"`
	Href     string `json:"href"`
	Location string `json:"location"`
}

// isActionable mirrors what a user could click: attached, rendered with a
// non-empty box, not hidden, not disabled and not covered by another element.
// The cover check needs the centre inside the viewport.
const isActionable = `(el) => {
	if (!el || !el.isConnected || el.disabled) return false;
	const style = window.getComputedStyle(el);
	if (style.display === 'none' || style.visibility === 'hidden' || style.pointerEvents === 'none') return false;
	const rect = el.getBoundingClientRect();
	if (rect.width <= 0 || rect.height <= 0) return false;
	const x = rect.left + rect.width / 2;
	const y = rect.top + rect.height / 2;
	if (x < 0 || y < 0 || x >= window.innerWidth || y >= window.innerHeight) return true;
	const hit = document.elementFromPoint(x, y);
	return !!hit && (hit === el || el.contains(hit));
}`

const linkText = `(el) => (el.innerText || el.textContent || '').trim()`

// jsString quotes s as a JavaScript string literal.
func jsString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}

func linkTextsScript(selector string) string {
	return fmt.Sprintf(`(() => {
	const text = %s;
	return [...document.querySelectorAll(%s)].map(text);
})()`, linkText, jsString(selector))
}

func findLinkScript(selector string, from int, name string) string {
	return fmt.Sprintf(`(() => {
	const text = %s;
	const links = [...document.querySelectorAll(%s)];
	for (let i = %d; i < links.length; i++) {
		if (text(links[i]) === %s) {
			return {index: i, href: links[i].href || '', location: location.href};
		}
	}
	return {index: -1, href: '', location: location.href};
})()`, linkText, jsString(selector), from, jsString(name))
}

func navigatedScript(from string) string {
	return fmt.Sprintf(`location.href !== %s && document.readyState === 'complete'`, jsString(from))
}

// actionableScript scrolls the element into view first so the cover check
// sees what a click at its centre would hit.
func actionableScript(selector string) string {
	return fmt.Sprintf(`((el) => {
	if (el && el.scrollIntoView) el.scrollIntoView({block: 'center', inline: 'center'});
	return (%s)(el);
})(document.querySelector(%s))`, isActionable, jsString(selector))
}

func countScript(selector string) string {
	return fmt.Sprintf(`document.querySelectorAll(%s).length`, jsString(selector))
}

func settledScript(itemSelector string, before int, control string) string {
	return fmt.Sprintf(`document.querySelectorAll(%s).length > %d || !(%s)(document.querySelector(%s))`,
		jsString(itemSelector), before, isActionable, jsString(control))
}

// productsScript reads every product cell in one round trip. Missing
// sub-elements come back as null so the parser can tell them from empty text.
func productsScript(sel config.ProductSelectors) string {
	return fmt.Sprintf(`(() => [...document.querySelectorAll(%s)].map(el => {
	const title = el.querySelector(%s);
	const description = el.querySelector(%s);
	const price = el.querySelector(%s);
	const reviews = el.querySelector(%s);
	return {
		title: title ? (title.title || title.getAttribute('title') || '') : null,
		description: description ? description.innerText : null,
		price: price ? price.innerText : null,
		stars: el.querySelectorAll(%s).length,
		reviewCount: reviews ? reviews.innerText : null,
	};
}))()`,
		jsString(sel.Item),
		jsString(sel.Title),
		jsString(sel.Description),
		jsString(sel.Price),
		jsString(sel.ReviewCount),
		jsString(sel.RatingStar),
	)
}
