package render

// Stylesheet is appended once at the end of every HTML book. It restores
// the table, list and heading styling lost with the site's own CSS.
const Stylesheet = `
      <style>
        .thumbinner {
          text-align: center;
        }
        table {
          width: 100%;
          margin: 1em 0;
          border: 1px solid #a2a9b1;
          border-collapse: collapse;
        }
        th {
          background-color: #eaecf0;
          text-align: center;
          border: 1px solid #a2a9b1;
          padding: 0.2em 0.4em;
        }
        td {
          border: 1px solid #a2a9b1;
          padding: 0.2em 0.4em;
        }
        ul {
          display: block;
          list-style-type: disc;
        }
        li {
          display: list-item;
          text-align: -webkit-match-parent;
        }
        dt {
          font-weight: bold;
          margin-bottom: 0.1em;
        }
        h1, h2 {
          border-bottom: 1px solid #a2a9b1;
        }
      </style>
    `
