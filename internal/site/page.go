package site

// pageTemplate is the single-page shell. Interactive pieces (carousel, FAQ
// accordion, lightbox, booking form) hydrate client-side from the JSON APIs.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Business.Title}}</title>
</head>
<body>
  <nav>
    <a href="#top" class="logo">{{.Business.Name}}</a>
    <ul>{{range .Navigation}}
      <li><a href="#{{.Anchor}}">{{.Label}}</a></li>{{end}}
    </ul>
  </nav>
  <header id="top">
    <h1>{{.Business.Tagline}}</h1>
    <p>{{.Business.Summary}}</p>
    <a href="#booking">Book Now</a>
  </header>
  <section id="services">
    <h2>Our Services</h2>{{range .Services}}
    <article><h3>{{.Title}}</h3><p>{{.Description}}</p></article>{{end}}
  </section>
  <section id="gallery">
    <h2>Our Work</h2>{{range $i, $img := .Gallery}}
    <figure data-index="{{$i}}"><img src="{{$img.URL}}" alt="{{$img.Title}}"><figcaption>{{$img.Title}}: {{$img.Description}}</figcaption></figure>{{end}}
  </section>
  <section id="pricing">
    <h2>Simple, Transparent Pricing</h2>{{range .Pricing}}
    <article data-plan="{{.ID}}"{{if .Popular}} class="popular"{{end}}>
      <h3>{{.Title}}</h3>
      <p class="price">${{.Price}}</p>
      <p>{{.Description}}</p>
      <ul>{{range .Features}}<li>{{.}}</li>{{end}}</ul>
    </article>{{end}}
  </section>
  <section id="testimonials">
    <h2>What Our Customers Say</h2>{{range .Testimonials}}
    <blockquote data-rating="{{.Rating}}"><p>{{.Content}}</p><cite>{{.Name}}, {{.Role}}</cite></blockquote>{{end}}
  </section>
  <section id="faq">
    <h2>Frequently Asked Questions</h2>{{range .FAQ}}
    <details><summary>{{.Question}}</summary><p>{{.Answer}}</p></details>{{end}}
  </section>
  <section id="booking" data-sessions="/api/booking/sessions" data-socket="/api/booking/ws">
    <h2>Book Your Installation</h2>
  </section>
  <section id="contact" data-leads="/api/leads">
    <h2>Get In Touch</h2>
    <p>Contact us for a free quote or to schedule your TV mounting service.</p>
  </section>
  <footer><p>{{.Business.ServiceArea}}</p></footer>
</body>
</html>`
