package template

// SiteCSS styles the browser pages. The book offset per state lives on
// .book-stage.
const SiteCSS = `
html, body {
  margin: 0;
  height: 100%;
  background: #0c0a09;
  color: #e7e5e4;
  font-family: "Zen Antique", Georgia, serif;
}

a { color: inherit; }

.home {
  min-height: 100vh;
  display: flex;
  flex-direction: column;
  align-items: center;
  justify-content: center;
  gap: 3rem;
  background: radial-gradient(circle at center, rgba(127, 29, 29, 0.1), #000);
}

.home h1 {
  font-family: "Cinzel", serif;
  font-size: 5rem;
  letter-spacing: 0.3em;
  text-transform: uppercase;
  color: #fecaca;
  margin: 0;
}

.home .subtitle {
  color: #a8a29e;
  letter-spacing: 0.3em;
  text-transform: uppercase;
}

.villages {
  display: flex;
  gap: 2rem;
  align-items: flex-start;
  min-height: 200px;
}

.village { position: relative; min-width: 200px; }

.village > a {
  display: block;
  padding: 1rem 2rem;
  border: 1px solid rgba(127, 29, 29, 0.5);
  text-align: center;
  text-decoration: none;
  letter-spacing: 0.2em;
  text-transform: uppercase;
}

.village.open > a {
  background: rgba(127, 29, 29, 0.4);
  border-color: #991b1b;
}

.village .clans {
  display: none;
  margin-top: 0.5rem;
  padding: 0.5rem;
  background: #0c0a09;
  border: 1px solid rgba(127, 29, 29, 0.5);
}

.village.open .clans { display: flex; flex-direction: column; gap: 0.25rem; }

.village .clans a {
  padding: 0.5rem 1rem;
  text-align: center;
  text-decoration: none;
  letter-spacing: 0.15em;
}

.village .clans .none { color: #57534e; font-style: italic; font-size: 0.75rem; text-align: center; }

.transition {
  position: fixed;
  inset: 0;
  display: flex;
  align-items: center;
  justify-content: center;
  background: #0c0a09;
}

.transition img {
  width: 24rem;
  height: 24rem;
  animation: zoom 1.5s ease-in-out forwards;
}

@keyframes zoom {
  0% { transform: scale(0) rotate(-180deg); opacity: 0; }
  10% { transform: scale(1) rotate(0); opacity: 1; }
  100% { transform: scale(50); opacity: 1; }
}

.book {
  min-height: 100vh;
  display: flex;
  align-items: center;
  justify-content: center;
  overflow: hidden;
}

.book .back {
  position: absolute;
  top: 2rem;
  left: 2rem;
  padding: 0.5rem 1.5rem;
  border: 1px solid rgba(127, 29, 29, 0.5);
  text-decoration: none;
}

.book-stage {
  display: flex;
  transition: transform 0.7s ease-in-out;
  box-shadow: 0 0 50px rgba(0, 0, 0, 0.8);
}

.book-stage.closed-start { transform: translateX(-25%); }
.book-stage.open { transform: translateX(0); }
.book-stage.closed-end { transform: translateX(25%); }

.page { width: 450px; height: 640px; background: #f5e6c8; }
.page img { width: 100%; height: 100%; object-fit: fill; display: block; }
.book .empty { color: #78716c; font-style: italic; }

.flip { position: absolute; bottom: 2rem; display: flex; gap: 2rem; }
.flip a, .flip span { padding: 0.5rem 1rem; text-decoration: none; }
.flip span { color: #44403c; }

.consent {
  position: fixed;
  inset: 0;
  display: flex;
  align-items: center;
  justify-content: center;
  background: rgba(0, 0, 0, 0.8);
}

.consent .dialog {
  max-width: 24rem;
  padding: 2rem;
  text-align: center;
  background: #1c1917;
  border: 2px solid rgba(127, 29, 29, 0.5);
}

.consent .choices { display: flex; gap: 1rem; justify-content: center; }
.consent .choices a { padding: 0.5rem 1.5rem; border: 1px solid #44403c; text-decoration: none; }

.player {
  position: fixed;
  bottom: 2rem;
  right: 2rem;
  display: flex;
  align-items: center;
  gap: 0.75rem;
  padding: 0.75rem;
  border-radius: 9999px;
  background: rgba(28, 25, 23, 0.8);
}

.player button { background: none; border: 0; color: #fecaca; cursor: pointer; width: 2.5rem; }
.player input[type=range] { width: 6rem; accent-color: #b91c1c; }
`

// PageCSS styles the XHTML pages of a packed book.
const PageCSS = `
body {
  margin: 0;
  padding: 0;
  text-align: center;
}

h1 {
  text-align: center;
  font-size: 1.5em;
  margin: 2em auto;
  font-weight: bold;
}

img {
  max-width: 100%;
  max-height: 100%;
  height: auto;
  display: block;
  margin-left: auto !important;
  margin-right: auto !important;
}
`
